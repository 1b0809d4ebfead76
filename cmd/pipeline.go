package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/marcus/picksync/internal/fsutil"
	"github.com/marcus/picksync/internal/mapping"
	"github.com/marcus/picksync/internal/metadata"
	"github.com/marcus/picksync/internal/output"
	"github.com/marcus/picksync/internal/reconcile"
	"github.com/marcus/picksync/internal/report"
)

// errAborted is returned when the user declines an in-place overwrite.
var errAborted = errors.New("aborted: output left unchanged")

// syncJob is one run of the backup → load → reconcile → strip → write
// pipeline. The three tools differ only in how they fill it in.
type syncJob struct {
	title   string
	noun    string // what gets updated, for messages
	xmlPath string
	outPath string

	// reportPath is empty for tools that emit no reports.
	reportPath    string
	header        report.Header
	trackUnmapped bool

	// unmatchedColumn heads the unmatched-key report, written only when
	// rule.TrackUnmatched is set.
	unmatchedColumn string

	backup  fsutil.BackupStyle
	locator metadata.Locator
	rule    reconcile.Rule
	format  metadata.Format

	dryRun  bool
	confirm bool

	load func() (*mapping.Mapping, error)
}

// Overridable in tests.
var (
	now            = time.Now
	confirmReplace = askOverwrite
)

func runSync(job syncJob) error {
	if !job.dryRun {
		if job.confirm && job.backup == fsutil.BackupNone && fsutil.SameFile(job.xmlPath, job.outPath) {
			ok, err := confirmReplace(job.outPath)
			if err != nil {
				return err
			}
			if !ok {
				return errAborted
			}
		}

		bak, err := fsutil.Backup(job.xmlPath, job.backup, now())
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		if bak != "" {
			output.Info("Backup created: %s", bak)
		}
	}

	m, err := job.load()
	if err != nil {
		return err
	}

	doc, err := metadata.ParseFile(job.xmlPath)
	if err != nil {
		return err
	}

	values := doc.Values(job.locator)
	slog.Debug("sync: located values", "count", len(values), "qualified", job.locator.Qualified)
	res := reconcile.Apply(values, m, job.rule)
	if res.Skipped > 0 {
		output.Warning("%d values have no <%s> element and were left unchanged", res.Skipped, job.rule.Key)
	}

	doc.StripNamespaces()
	data, err := doc.Encode(job.format)
	if err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}

	if job.dryRun {
		return preview(job, res)
	}

	if err := fsutil.WriteFileAtomic(job.outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", job.outPath, err)
	}
	output.Info("Updated XML saved at %s", job.outPath)

	if job.reportPath != "" {
		if err := writeReports(job, res); err != nil {
			return err
		}
	}

	output.Success("Updated %d %s in picklist", len(res.Changes), job.noun)
	return nil
}

func writeReports(job syncJob, res *reconcile.Result) error {
	written, err := report.WriteChanges(job.reportPath, job.header, res.Changes)
	if err != nil {
		return err
	}
	if written {
		output.Info("Report saved at %s", job.reportPath)
	} else {
		output.Info("No changes made (%s already matched)", job.noun)
	}

	if job.trackUnmapped {
		unmappedPath := report.UnmappedPath(job.reportPath)
		written, err := report.WriteUnmapped(unmappedPath, res.Unmapped)
		if err != nil {
			return err
		}
		if written {
			output.Info("Unmapped labels saved at %s", unmappedPath)
		}
	}

	if job.rule.TrackUnmatched {
		unmatchedPath := report.UnmatchedPath(job.reportPath)
		written, err := report.WriteList(unmatchedPath, job.unmatchedColumn, res.Unmatched)
		if err != nil {
			return err
		}
		if written {
			output.Info("%d unmatched keys saved at %s", len(res.Unmatched), unmatchedPath)
		}
	}
	return nil
}

func preview(job syncJob, res *reconcile.Result) error {
	if output.IsTerminal(os.Stdout) {
		md := report.Markdown(job.title+" (dry run)", job.header, res)
		rendered, err := output.RenderMarkdown(md, output.TerminalWidth(0))
		if err != nil {
			return fmt.Errorf("render preview: %w", err)
		}
		fmt.Fprintln(output.Out, rendered)
		return nil
	}

	output.Info("Dry run: %d values examined, %d would change", res.Examined, len(res.Changes))
	if len(res.Changes) > 0 {
		fmt.Fprint(output.Out, output.Table(report.Rows(job.header, res.Changes)))
	}
	for _, l := range res.Unmapped {
		output.Warning("Unmapped label (no fullName): %s", l)
	}
	for _, k := range res.Unmatched {
		output.Warning("No mapping for %s", k)
	}
	return nil
}

func askOverwrite(path string) (bool, error) {
	if !output.IsTerminal(os.Stdin) {
		return true, nil
	}

	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Overwrite %s in place without a backup?", path)).
		Affirmative("Overwrite").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func loadDirMapping(dir string, opts mapping.Options) (*mapping.Mapping, error) {
	res, err := mapping.LoadDir(dir, opts)
	if err != nil {
		return nil, err
	}
	for _, skipped := range res.Skipped {
		output.Warning("Skipping %s, %v", skipped.File, skippedReason(skipped))
	}
	if len(res.Loaded) == 0 {
		output.Warning("No mapping spreadsheets loaded from %s", dir)
	}
	output.Info("Loaded %d mappings from %d spreadsheet(s)", res.Mapping.Len(), len(res.Loaded))
	return res.Mapping, nil
}

func skippedReason(e *mapping.MissingColumnsError) string {
	return fmt.Sprintf("missing required columns %v", e.Missing)
}
