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

// Package paths resolves the on-disk location of preferences saved by the
// prefs package.
package paths

import (
	"os"
	"path"
)

// the base path for all resources. don't use this value directly except in
// getBasePath(); that function accounts for the OS-specific home directory.
const baseResourcePath = ".retrocores"

// ResourcePath returns the resource string prepended with OS-specific
// location details.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return path.Join(p...)
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return path.Join(home, baseResourcePath[1:])
}
