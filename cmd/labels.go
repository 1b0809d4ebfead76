package cmd

import (
	"github.com/marcus/picksync/internal/mapping"
	"github.com/marcus/picksync/internal/metadata"
	"github.com/marcus/picksync/internal/reconcile"
	"github.com/marcus/picksync/internal/report"
	"github.com/spf13/cobra"
)

var labelsOpts dirOptions

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Update picklist labels from a folder of spreadsheets, matched by API name",
	Long: `Update picklist labels from every spreadsheet in a folder. Spreadsheets
need API_Name and Label columns; files without them are skipped with a
warning. API names match exactly after trimming and later files win.

Only valueSet/valueSetDefinition/value entries in the Salesforce metadata
namespace are updated. A mapped value without a <label> gets one.

--excel_dir is accepted as a spelling of --excel-dir.

Examples:
  picksync labels --xml Account.object --excel-dir maps/ --out out.object --report labels.csv
  picksync labels --xml Account.object --excel-dir maps/ --out out.object --report labels.csv --dry-run`,
	GroupID: "tools",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLabels(labelsOpts)
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
	labelsOpts.register(labelsCmd)
}

func runLabels(opts dirOptions) error {
	c := currentConfig()
	rule := reconcile.APINameToLabel
	rule.TrackUnmatched = opts.unmatched

	mopts := mapping.Options{
		KeyColumn:   mapping.ColumnAPIName,
		ValueColumn: mapping.ColumnLabel,
		Extensions:  c.Extensions,
	}

	return runSync(syncJob{
		title:           "labels",
		noun:            "labels",
		xmlPath:         opts.xmlPath,
		outPath:         opts.outPath,
		reportPath:      opts.reportPath,
		header:          report.APIChangeHeader,
		unmatchedColumn: report.UnmatchedAPINameColumn,
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
