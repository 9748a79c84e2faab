// This file is part of retrocores.
//
// retrocores is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// retrocores is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with retrocores.  If not, see <https://www.gnu.org/licenses/>.

// Package mmu implements the Game Boy's 64KiB address space: a fixed
// bank-0 ROM window, a switchable 16KiB ROM bank, video RAM, gated
// external RAM, work RAM with its echo mirror, OAM, memory-mapped I/O
// (including the joypad matrix and OAM DMA), high RAM and the interrupt
// enable register.
package mmu
