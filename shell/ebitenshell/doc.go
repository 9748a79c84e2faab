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

// Package ebitenshell is a windowed shell built on ebiten/v2, upscaling
// a core's framebuffer with nearest-neighbour interpolation and
// forwarding keyboard state to the core's input latch.
package ebitenshell
