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

// Package chip8 implements a CHIP-8 virtual machine: 4KiB memory, sixteen
// 8-bit V registers, a 12-bit index register, a 64x32 monochrome display, a
// 16-key hex keypad and two 60Hz countdown timers. Classic quirk semantics
// are used throughout (8XY6/8XYE shift from Vy, FX55/FX65 increment I by
// x+1) as required for compatibility with the majority of published ROMs.
package chip8
