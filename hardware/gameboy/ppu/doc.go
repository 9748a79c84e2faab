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

// Package ppu implements the Game Boy's scanline-based Pixel Processing
// Unit, background plane only: a T-state accumulator drives LY through
// 154 lines per frame, rendering each visible scanline into a 160x144
// indexed framebuffer and requesting a VBlank interrupt at LY==144.
package ppu
