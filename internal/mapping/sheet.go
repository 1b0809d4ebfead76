package mapping

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readRows returns every row of a spreadsheet as strings. Workbooks are read
// from their first sheet.
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVRows(path)
	default:
		return readWorkbookRows(path)
	}
}

func readWorkbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], path, err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(stripBOM(file))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	return rows, nil
}

// stripBOM drops a leading UTF-8 byte order mark, which spreadsheet exports
// often prepend to CSV files.
func stripBOM(r io.Reader) io.Reader {
	buf := make([]byte, 3)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return io.MultiReader(strings.NewReader(string(buf[:n])), r)
	}
	if string(buf) == "\xef\xbb\xbf" {
		return r
	}
	return io.MultiReader(strings.NewReader(string(buf)), r)
}
