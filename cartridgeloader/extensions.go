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

package cartridgeloader

// Kind identifies which core a loaded ROM should be attached to.
type Kind int

const (
	// KindUnknown is returned for an unrecognized file extension.
	KindUnknown Kind = iota

	// KindChip8 covers the .ch8/.c8 flat binary format.
	KindChip8

	// KindGameBoy covers .gb/.gbc cartridge images.
	KindGameBoy

	// KindGameBoyAdvance covers .gba images, which this core reads only
	// far enough to display the title; it never executes them.
	KindGameBoyAdvance
)

// extensionKinds maps a lower-cased file extension (including the dot)
// onto the core it identifies.
var extensionKinds = map[string]Kind{
	".ch8": KindChip8,
	".c8":  KindChip8,
	".gb":  KindGameBoy,
	".gbc": KindGameBoy,
	".gba": KindGameBoyAdvance,
}
