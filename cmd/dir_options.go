package cmd

import (
	"github.com/marcus/picksync/internal/fsutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dirOptions are the flags shared by the directory-driven tools.
type dirOptions struct {
	xmlPath    string
	excelDir   string
	outPath    string
	reportPath string
	backup     bool
	unmatched  bool
	dryRun     bool
	yes        bool
}

func (o *dirOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.xmlPath, "xml", "", "Path to input XML metadata file (e.g., Account.object)")
	f.StringVar(&o.excelDir, "excel-dir", "", "Folder containing mapping spreadsheets")
	f.StringVar(&o.outPath, "out", "", "Path to save updated XML")
	f.StringVar(&o.reportPath, "report", "", "Path to save CSV change report")
	f.BoolVar(&o.backup, "backup", false, "Backup original XML to <xml>.bak before updating")
	f.BoolVar(&o.unmatched, "unmatched", false, "Also write <report>_unmatched.csv listing keys with no mapping")
	f.BoolVar(&o.dryRun, "dry-run", false, "Preview changes without writing anything")
	f.BoolVarP(&o.yes, "yes", "y", false, "Do not ask before overwriting the input file in place")
	f.SetNormalizeFunc(lenientFlagNames)
	markRequired(cmd, f, "xml", "excel-dir", "out", "report")
}

func (o *dirOptions) backupStyle() fsutil.BackupStyle {
	if o.backup {
		return fsutil.BackupFixed
	}
	return fsutil.BackupNone
}

func markRequired(cmd *cobra.Command, f *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if f.Lookup(name) == nil {
			panic("unknown flag " + name)
		}
		_ = cmd.MarkFlagRequired(name)
	}
}
