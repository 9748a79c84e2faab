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

// Package prefs implements a small key/value preferences system, persisted
// to a flat "key :: value" text file via Disk. It backs the Config type
// which holds the runtime-tunable knobs the specification leaves as
// implementation choices: CHIP-8 batch size and target IPS, the Game Boy
// per-tick cycle cap, the CHIP-8 RNG seed, and the scheduler's drift-resync
// threshold.
package prefs
