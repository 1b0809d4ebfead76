package report

import (
	"fmt"
	"strings"

	"github.com/marcus/picksync/internal/reconcile"
)

// Markdown renders a dry-run summary of res as markdown tables.
func Markdown(title string, header Header, res *reconcile.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("%d values examined, %d would change", res.Examined, len(res.Changes)))
	if len(res.Unmapped) > 0 {
		sb.WriteString(fmt.Sprintf(", %d unmapped", len(res.Unmapped)))
	}
	if len(res.Unmatched) > 0 {
		sb.WriteString(fmt.Sprintf(", %d unmatched", len(res.Unmatched)))
	}
	sb.WriteString(".\n")

	if len(res.Changes) > 0 {
		sb.WriteString("\n## Changes\n\n")
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", header[0], header[1], header[2]))
		sb.WriteString("|---|---|---|\n")
		for _, c := range res.Changes {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", cellText(c.Key), cellText(c.Old), cellText(c.New)))
		}
	}

	if len(res.Unmapped) > 0 {
		sb.WriteString("\n## Unmapped\n\n")
		sb.WriteString(fmt.Sprintf("| %s |\n|---|\n", UnmappedColumn))
		for _, l := range res.Unmapped {
			sb.WriteString(fmt.Sprintf("| %s |\n", cellText(l)))
		}
	}

	if len(res.Unmatched) > 0 {
		sb.WriteString("\n## Unmatched\n\n| Key |\n|---|\n")
		for _, k := range res.Unmatched {
			sb.WriteString(fmt.Sprintf("| %s |\n", cellText(k)))
		}
	}
	return sb.String()
}

// Rows returns the change table as plain rows, header first.
func Rows(header Header, changes []reconcile.Change) [][]string {
	rows := [][]string{header[:]}
	for _, c := range changes {
		rows = append(rows, []string{c.Key, c.Old, c.New})
	}
	return rows
}

func cellText(s string) string {
	if s == "" {
		return "_(none)_"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
