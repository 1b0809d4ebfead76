// Package output provides styled console lines (info, success, warning,
// error) and table/markdown rendering for picksync commands, using lipgloss.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	// Styles
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Out is where console lines are written. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// Info prints an informational line
func Info(format string, args ...interface{}) {
	fmt.Fprintln(Out, subtleStyle.Render("[INFO]")+" "+fmt.Sprintf(format, args...))
}

// Success prints a success line
func Success(format string, args ...interface{}) {
	fmt.Fprintln(Out, successStyle.Render("[SUCCESS] "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning line
func Warning(format string, args ...interface{}) {
	fmt.Fprintln(Out, warningStyle.Render("[WARN] "+fmt.Sprintf(format, args...)))
}

// Error prints an error line
func Error(format string, args ...interface{}) {
	fmt.Fprintln(Out, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Table renders rows as space-aligned columns, header row first. Widths are
// measured in terminal cells so wide characters in labels line up.
func Table(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var widths []int
	for _, row := range rows {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for r, row := range rows {
		var line strings.Builder
		for i, c := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(c)
			if i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-ansi.StringWidth(c)))
			}
		}
		text := line.String()
		if r == 0 {
			text = headerStyle.Render(text)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String()
}
