// Package report writes the CSV change and unmapped reports and renders
// dry-run previews.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/marcus/picksync/internal/fsutil"
	"github.com/marcus/picksync/internal/reconcile"
)

// Header is the column row of a change report.
type Header [3]string

// Fixed report headers.
var (
	LabelChangeHeader = Header{"Label", "Old_API_Name", "New_API_Name"}
	APIChangeHeader   = Header{"API_Name", "Old_Label", "New_Label"}
)

// Single-column report headers.
const (
	UnmappedColumn         = "Unmapped_Labels_No_FullName"
	UnmatchedLabelColumn   = "Unmatched_Labels"
	UnmatchedAPINameColumn = "Unmatched_API_Names"
)

// UnmappedPath derives the unmapped report path by inserting "_unmapped"
// before the extension of reportPath. Paths without an extension get ".csv".
func UnmappedPath(reportPath string) string {
	return siblingPath(reportPath, "_unmapped")
}

// UnmatchedPath derives the unmatched-key report path the same way, with an
// "_unmatched" suffix.
func UnmatchedPath(reportPath string) string {
	return siblingPath(reportPath, "_unmatched")
}

func siblingPath(reportPath, suffix string) string {
	ext := filepath.Ext(reportPath)
	base := strings.TrimSuffix(reportPath, ext)
	if ext == "" {
		ext = ".csv"
	}
	return base + suffix + ext
}

// WriteChanges writes changes to path. Nothing is written when changes is
// empty; the return value reports whether a file was produced.
func WriteChanges(path string, header Header, changes []reconcile.Change) (bool, error) {
	if len(changes) == 0 {
		return false, nil
	}

	rows := make([][]string, 0, len(changes)+1)
	rows = append(rows, header[:])
	for _, c := range changes {
		rows = append(rows, []string{c.Key, c.Old, c.New})
	}
	if err := writeCSV(path, rows); err != nil {
		return false, fmt.Errorf("write change report: %w", err)
	}
	return true, nil
}

// WriteUnmapped writes the unmapped labels to path, skipping empty lists.
func WriteUnmapped(path string, labels []string) (bool, error) {
	return WriteList(path, UnmappedColumn, labels)
}

// WriteList writes a single-column report. Empty lists produce no file.
func WriteList(path, column string, items []string) (bool, error) {
	if len(items) == 0 {
		return false, nil
	}

	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, []string{column})
	for _, item := range items {
		rows = append(rows, []string{item})
	}
	if err := writeCSV(path, rows); err != nil {
		return false, fmt.Errorf("write %s report: %w", column, err)
	}
	return true, nil
}

func writeCSV(path string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, buf.Bytes(), 0644)
}
