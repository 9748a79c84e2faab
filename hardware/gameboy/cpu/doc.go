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

// Package cpu implements the Sharp LR35902 instruction set: the primary
// opcode page, dispatched through a flat 256-entry table rather than a
// chained conditional, per the project's preference for indexed decode on
// the CPU hot loop, and the 0xCB-prefixed secondary page, decoded directly
// from the bit fields of its opcode byte.
package cpu
