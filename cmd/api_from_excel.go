package cmd

import (
	"github.com/marcus/picksync/internal/fsutil"
	"github.com/marcus/picksync/internal/mapping"
	"github.com/marcus/picksync/internal/metadata"
	"github.com/marcus/picksync/internal/output"
	"github.com/marcus/picksync/internal/reconcile"
	"github.com/marcus/picksync/internal/report"
	"github.com/spf13/cobra"
)

type apiFromExcelOptions struct {
	xmlPath   string
	excelPath string
	outPath   string
	dryRun    bool
}

var apiFromExcelOpts apiFromExcelOptions

var apiFromExcelCmd = &cobra.Command{
	Use:   "api-from-excel",
	Short: "Update picklist API names from one spreadsheet, matched by exact label",
	Long: `Update picklist API names (fullName) from a single spreadsheet with
Label and API_Name columns. Labels match exactly after trimming.

The input XML is always backed up to <xml>.bak_YYYYMMDD_HHMMSS first. Every
<value> element is considered, whatever its namespace, and the result is
pretty-printed. A spreadsheet without both columns is an error.

Examples:
  picksync api-from-excel --xml Account.object --excel map.xlsx --out Account.object
  picksync api-from-excel --xml Color__c.field-meta.xml --excel map.xlsx --out out.xml --dry-run`,
	GroupID: "tools",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAPIFromExcel(apiFromExcelOpts)
	},
}

func init() {
	rootCmd.AddCommand(apiFromExcelCmd)

	f := apiFromExcelCmd.Flags()
	f.StringVar(&apiFromExcelOpts.xmlPath, "xml", "", "Path to picklist XML file (Account.object, etc.)")
	f.StringVar(&apiFromExcelOpts.excelPath, "excel", "", "Path to spreadsheet with Label & API_Name columns")
	f.StringVar(&apiFromExcelOpts.outPath, "out", "", "Path to save updated XML file")
	f.BoolVar(&apiFromExcelOpts.dryRun, "dry-run", false, "Preview changes without writing anything")
	f.SetNormalizeFunc(lenientFlagNames)
	for _, name := range []string{"xml", "excel", "out"} {
		_ = apiFromExcelCmd.MarkFlagRequired(name)
	}
}

func runAPIFromExcel(opts apiFromExcelOptions) error {
	c := currentConfig()
	mopts := mapping.Options{
		KeyColumn:   mapping.ColumnLabel,
		ValueColumn: mapping.ColumnAPIName,
	}

	return runSync(syncJob{
		title:   "api-from-excel",
		noun:    "API names",
		xmlPath: opts.xmlPath,
		outPath: opts.outPath,
		header:  report.LabelChangeHeader,
		backup:  fsutil.BackupTimestamped,
		locator: metadata.Locator{},
		rule:    reconcile.LabelToAPIName,
		format:  metadata.Format{Pretty: true, Indent: c.Indent},
		dryRun:  opts.dryRun,
		load: func() (*mapping.Mapping, error) {
			m, err := mapping.LoadFile(opts.excelPath, mopts)
			if err != nil {
				return nil, err
			}
			output.Info("Loaded %d label->API mappings from %s", m.Len(), opts.excelPath)
			return m, nil
		},
	})
}
