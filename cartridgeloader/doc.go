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

// Package cartridgeloader loads ROM data from a local file or an HTTP(S)
// URL and identifies which core it belongs to by its file extension.
//
// When the ROM is ready to be attached to a core, the Load() method reads
// it into memory. The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/brix.ch8")
//	if err := cl.Load(); err != nil { ... }
package cartridgeloader
