// Package mapping loads label/API-name lookup tables from spreadsheets.
//
// A Mapping remembers how its keys were normalized, so callers look values
// up with the raw text found in metadata and get the same trimming and case
// folding the loader applied to the spreadsheet cells.
package mapping

import (
	"strings"
)

// Column names recognized in mapping spreadsheets.
const (
	ColumnLabel   = "Label"
	ColumnAPIName = "API_Name"
)

// Options describe which columns form a mapping and how keys are normalized.
type Options struct {
	KeyColumn   string
	ValueColumn string
	// FoldCase lower-cases keys on both load and lookup.
	FoldCase bool
	// Extensions lists the file extensions LoadDir picks up. Empty means
	// DefaultExtensions.
	Extensions []string
}

// DefaultExtensions are the spreadsheet types loaded from a directory when
// Options.Extensions is empty.
var DefaultExtensions = []string{".xlsx"}

// NormalizeKey trims s and lower-cases it when FoldCase is set.
func (o Options) NormalizeKey(s string) string {
	s = strings.TrimSpace(s)
	if o.FoldCase {
		s = strings.ToLower(s)
	}
	return s
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

// Mapping is a normalized key to target value lookup.
type Mapping struct {
	opts    Options
	entries map[string]string
}

// New returns an empty mapping using opts for key normalization.
func New(opts Options) *Mapping {
	return &Mapping{opts: opts, entries: make(map[string]string)}
}

// Set stores value under the normalized key. A later Set for the same key
// wins.
func (m *Mapping) Set(key, value string) {
	m.entries[m.opts.NormalizeKey(key)] = value
}

// Lookup normalizes raw and returns the mapped value.
func (m *Mapping) Lookup(raw string) (string, bool) {
	v, ok := m.entries[m.opts.NormalizeKey(raw)]
	return v, ok
}

// Len returns the number of distinct keys.
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Merge copies every entry of other into m, overwriting existing keys.
func (m *Mapping) Merge(other *Mapping) {
	for k, v := range other.entries {
		m.entries[k] = v
	}
}
