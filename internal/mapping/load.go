package mapping

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile reads one spreadsheet into a mapping. A header without both
// configured columns yields *MissingColumnsError.
func LoadFile(path string, opts Options) (*Mapping, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	m := New(opts)
	if err := fill(m, path, rows, opts); err != nil {
		return nil, err
	}
	slog.Debug("mapping: loaded file", "path", path, "rows", len(rows), "mappings", m.Len())
	return m, nil
}

func fill(m *Mapping, path string, rows [][]string, opts Options) error {
	keyIdx, valIdx := -1, -1
	if len(rows) > 0 {
		for i, h := range rows[0] {
			switch strings.TrimSpace(h) {
			case opts.KeyColumn:
				if keyIdx < 0 {
					keyIdx = i
				}
			case opts.ValueColumn:
				if valIdx < 0 {
					valIdx = i
				}
			}
		}
	}

	var missing []string
	if keyIdx < 0 {
		missing = append(missing, opts.KeyColumn)
	}
	if valIdx < 0 {
		missing = append(missing, opts.ValueColumn)
	}
	if len(missing) > 0 {
		return &MissingColumnsError{File: path, Missing: missing}
	}

	for _, row := range rows[1:] {
		key := strings.TrimSpace(cell(row, keyIdx))
		value := strings.TrimSpace(cell(row, valIdx))
		if key == "" || value == "" {
			continue
		}
		m.Set(key, value)
	}
	return nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// DirResult is the outcome of LoadDir.
type DirResult struct {
	Mapping *Mapping
	// Loaded lists the files merged into Mapping, in merge order.
	Loaded []string
	// Skipped holds one *MissingColumnsError per file that was passed over.
	Skipped []*MissingColumnsError
}

// LoadDir merges every spreadsheet in dir with a matching extension. Files
// are visited in lexical order and later files overwrite earlier keys.
// Missing columns skip the file; any other failure aborts the load.
func LoadDir(dir string, opts Options) (*DirResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read mapping directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	res := &DirResult{Mapping: New(opts)}
	for _, e := range entries {
		if e.IsDir() || !wanted(e.Name(), opts.extensions()) {
			continue
		}
		path := filepath.Join(dir, e.Name())

		m, err := LoadFile(path, opts)
		if err != nil {
			var mce *MissingColumnsError
			if errors.As(err, &mce) {
				res.Skipped = append(res.Skipped, mce)
				continue
			}
			return nil, err
		}
		res.Mapping.Merge(m)
		res.Loaded = append(res.Loaded, path)
	}
	return res, nil
}

func wanted(name string, exts []string) bool {
	// Office keeps "~$name.xlsx" lock files next to open workbooks.
	if strings.HasPrefix(name, "~$") {
		return false
	}
	ext := filepath.Ext(name)
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}
