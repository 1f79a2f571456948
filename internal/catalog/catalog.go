// Package catalog holds the static emission factor catalog and the fuzzy
// ranking search used to pick a factor from it.
package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Entry is one emission factor: a NAICS-keyed code and its display name.
type Entry struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Load returns the catalog from path, or the built-in table when path is
// empty. YAML and CSV files are supported, chosen by extension.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, eris.Errorf("catalog: unsupported file type %q", filepath.Ext(path))
	}
}

func loadYAML(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read yaml")
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, eris.Wrap(err, "catalog: parse yaml")
	}
	return validate(entries)
}

func loadCSV(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: open csv")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var entries []Entry
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "catalog: read csv")
		}
		// Tolerate an optional header row.
		if first {
			first = false
			if strings.EqualFold(record[0], "code") {
				continue
			}
		}
		entries = append(entries, Entry{
			Code: strings.TrimSpace(record[0]),
			Name: strings.TrimSpace(record[1]),
		})
	}
	return validate(entries)
}

func validate(entries []Entry) ([]Entry, error) {
	if len(entries) == 0 {
		return nil, eris.New("catalog: no entries")
	}
	for i, e := range entries {
		if e.Code == "" || e.Name == "" {
			return nil, eris.Errorf("catalog: entry %d has an empty code or name", i)
		}
	}
	return entries, nil
}
