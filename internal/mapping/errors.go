package mapping

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports a spreadsheet whose header lacks required
// columns.
type MissingColumnsError struct {
	File    string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns (%s)", e.File, strings.Join(e.Missing, ", "))
}
