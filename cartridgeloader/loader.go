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

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/retrocores/retrocores/errors"
	"github.com/retrocores/retrocores/logger"
)

const logID = "cartridgeloader"

// Loader specifies the ROM to load and the core it will be attached to.
type Loader struct {
	// Filename is a local path or an http(s) URL.
	Filename string

	// Kind identifies which core this ROM belongs to, derived from the
	// file extension unless set explicitly before calling Load.
	Kind Kind

	// Hash, if non-empty before Load is called, is checked against the
	// loaded data's SHA1 digest; a mismatch is an IoFailure. After a
	// successful Load, it holds the digest of what was actually read.
	Hash string

	// Data holds the loaded ROM bytes once Load has succeeded.
	Data []byte
}

// NewLoader returns a Loader with Kind set from filename's extension.
func NewLoader(filename string) Loader {
	ext := strings.ToLower(path.Ext(filename))
	return Loader{
		Filename: filename,
		Kind:     extensionKinds[ext],
	}
}

// ShortName returns filename's base name with its extension removed.
func (cl Loader) ShortName() string {
	name := path.Base(cl.Filename)
	return strings.TrimSuffix(name, path.Ext(cl.Filename))
}

// HasLoaded reports whether Load has already populated Data.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load reads the ROM into Data from either a local file or an http(s)
// URL, chosen by parsing Filename as a URL. Any read failure is reported
// as an IoFailure.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(cl.Filename)
	case "file", "":
		data, err = loadFile(cl.Filename)
	default:
		err = fmt.Errorf("unsupported URL scheme %q", scheme)
	}
	if err != nil {
		return errors.New(errors.IoFailure, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return errors.New(errors.IoFailure, fmt.Errorf("hash mismatch for %s", cl.Filename))
	}

	cl.Data = data
	cl.Hash = hash

	logger.Logf(logger.Allow, logID, "loaded %s (%d bytes, kind=%d)", cl.Filename, len(data), cl.Kind)

	return nil
}

func loadHTTP(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func loadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
