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

// Package logger is a small central logging sink shared by both emulation
// cores. The CPU, MMU and PPU packages never write to stdout directly;
// unknown-opcode skips, DMA triggers and header checksum warnings all
// pass through here so that a shell can choose to display,
// silence, or tail them without the core knowing anything about a
// terminal or window.
package logger
