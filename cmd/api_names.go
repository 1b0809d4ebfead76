package cmd

import (
	"github.com/marcus/picksync/internal/mapping"
	"github.com/marcus/picksync/internal/metadata"
	"github.com/marcus/picksync/internal/reconcile"
	"github.com/marcus/picksync/internal/report"
	"github.com/spf13/cobra"
)

var apiNamesOpts dirOptions

var apiNamesCmd = &cobra.Command{
	Use:   "api-names",
	Short: "Update picklist API names from a folder of spreadsheets, matched by label",
	Long: `Update picklist API names (fullName) from every spreadsheet in a folder.
Spreadsheets need Label and API_Name columns; files without them are skipped
with a warning. Labels match case-insensitively and later files win.

Only valueSet/valueSetDefinition/value entries in the Salesforce metadata
namespace are updated. Values with a label but no fullName are never given
one; they are listed in <report>_unmapped.csv instead.

--excel_dir is accepted as a spelling of --excel-dir.

Examples:
  picksync api-names --xml Account.object --excel-dir maps/ --out out.object --report changes.csv
  picksync api-names --xml Account.object --excel_dir maps/ --out Account.object --report changes.csv --backup`,
	GroupID: "tools",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAPINames(apiNamesOpts)
	},
}

func init() {
	rootCmd.AddCommand(apiNamesCmd)
	apiNamesOpts.register(apiNamesCmd)
}

func runAPINames(opts dirOptions) error {
	c := currentConfig()
	rule := reconcile.LabelToAPINameTracked
	rule.TrackUnmatched = opts.unmatched

	mopts := mapping.Options{
		KeyColumn:   mapping.ColumnLabel,
		ValueColumn: mapping.ColumnAPIName,
		FoldCase:    true,
		Extensions:  c.Extensions,
	}

	return runSync(syncJob{
		title:           "api-names",
		noun:            "API names",
		xmlPath:         opts.xmlPath,
		outPath:         opts.outPath,
		reportPath:      opts.reportPath,
		header:          report.LabelChangeHeader,
		trackUnmapped:   true,
		unmatchedColumn: report.UnmatchedLabelColumn,
		backup:          opts.backupStyle(),
		locator:         metadata.Locator{Qualified: true, Namespace: c.Namespace},
		rule:            rule,
		dryRun:          opts.dryRun,
		confirm:         !opts.yes,
		load: func() (*mapping.Mapping, error) {
			return loadDirMapping(opts.excelDir, mopts)
		},
	})
}
