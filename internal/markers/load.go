package markers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads one marker file into set, choosing the reader by extension:
// .csv, .kml, .gpx, anything else is the plain text format.
func (p *Parser) Load(path string, set *Set) error {
	before := set.Skipped
	if err := p.load(path, set); err != nil {
		return fmt.Errorf("markers %s: %w", path, err)
	}
	if n := set.Skipped - before; n > 0 {
		p.logf("markers %s: %d entries skipped", path, n)
	}
	return nil
}

func (p *Parser) load(path string, set *Set) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gpx" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return ReadGPX(data, set)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch ext {
	case ".csv":
		return ReadCSV(f, set)
	case ".kml":
		return ReadKML(f, set)
	}
	return p.Read(f, set)
}

// LoadAll reads every file into one Set so palette colors keep cycling
// across files.
func (p *Parser) LoadAll(paths ...string) (*Set, error) {
	set := &Set{}
	for _, path := range paths {
		if err := p.Load(path, set); err != nil {
			return nil, err
		}
	}
	return set, nil
}
