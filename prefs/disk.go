package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written as the first line of every saved prefs file.
const WarningBoilerPlate = "# this file is generated by retrocores. changes not conforming to the syntax below will be lost"

// Disk associates named pref values with a backing file, and knows how to
// load and save them all in one pass.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for Disk. The file at
// path need not exist yet; it is created on the first Save().
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add registers a pref value under key. v must be one of the concrete types
// in this package (*Bool, *String, *Int).
func (d *Disk) Add(key string, v interface{}) error {
	p, ok := v.(pref)
	if !ok {
		return fmt.Errorf("prefs: %T does not implement the pref interface", v)
	}
	d.entries[key] = p
	return nil
}

// Save writes every registered value to disk as "key :: value" lines,
// sorted by key for a stable diff.
func (d *Disk) Save() error {
	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, WarningBoilerPlate); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(f, "%s :: %s\n", k, d.entries[k].String()); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return nil
}

// Load reads the backing file and applies each recognised key to its
// registered pref value. Unrecognised keys are ignored so that a prefs file
// written by a newer version doesn't fail to load on an older one. If
// mustExist is false, a missing file is not an error.
func (d *Disk) Load(mustExist bool) error {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		kv := strings.SplitN(line, "::", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		if p, ok := d.entries[key]; ok {
			if err := p.Set(value); err != nil {
				return fmt.Errorf("prefs: loading %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
