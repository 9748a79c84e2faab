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

// Package random should be used in preference to math/rand directly when a
// random number is required inside a core, so that every draw is
// attributable to a single, seedable stream.
//
// The CHIP-8 CXNN instruction is the only opcode that draws from this
// package. Two Source values constructed with the same seed produce
// identical byte sequences, satisfying the reproducibility requirement of
// the CXNN opcode.
package random
