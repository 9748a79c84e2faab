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

// Package gameboy assembles the CPU, MMU, PPU, joypad and cartridge
// header parser into a single Game Boy DMG machine, exposing the
// load/reset/step host contract shared with the CHIP-8 core.
package gameboy
