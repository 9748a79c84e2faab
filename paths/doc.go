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

// Package paths contains functions to prepare paths to retrocores
// resources, currently just the saved prefs file.
//
// The ResourcePath() function modifies the supplied resource string such
// that it is prepended with the appropriate config directory. The policy is
// simple: if the base resource path, currently ".retrocores", is present in
// the program's current directory then that is used; otherwise the user's
// config directory is used, via os.UserConfigDir().
package paths
