package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pronouner/internal/diag"
	"pronouner/internal/driver"
	"pronouner/internal/textmod"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.xyr|directory]...",
	Short: "Report every problem in dialog files",
	Long: `Check dialog files without stopping at the first error. Directories
contribute their *.xyr files; with no arguments the project's dialogs
directory is checked.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include notes and fix suggestions")
}

func runCheck(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	opts, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format, "pretty", "json", "short"); err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}

	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	assets, err := resolveAssets(cmd, m)
	if err != nil {
		return err
	}
	paths := args
	if len(paths) == 0 {
		if m == nil {
			return errors.New("no files given and no project manifest found")
		}
		paths = []string{m.DialogsDir()}
	}
	norm := textmod.NormNone
	if m != nil {
		norm = m.Config.Build.Normalization()
		if jobs == 0 {
			jobs = m.Config.Build.Jobs
		}
	}

	fs, results, err := driver.Check(cmd.Context(), driver.CheckRequest{
		Paths:          paths,
		Assets:         assets,
		Normalize:      norm,
		MaxDiagnostics: opts.maxDiagnostics,
		Jobs:           jobs,
	})
	if err != nil {
		return err
	}

	merged := diag.NewBag(opts.maxDiagnostics)
	total := 0
	var loadErrs []error
	for _, r := range results {
		if r.Err != nil {
			loadErrs = append(loadErrs, fmt.Errorf("%s: %s: %w", r.Path, diag.IOLoadFileError.ID(), r.Err))
			continue
		}
		total += r.Errors
		merged.Merge(r.Bag)
	}
	if merged.Len() > 0 {
		if err := renderDiagnostics(cmd.OutOrStdout(), merged, fs, format, opts, withNotes); err != nil {
			return err
		}
	}
	if len(loadErrs) > 0 {
		return errors.Join(loadErrs...)
	}
	if total > 0 {
		if !opts.quiet && format == "pretty" {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d error(s) in %d file(s)\n", total, countFailed(results))
		}
		return errDiagnostics
	}
	if !opts.quiet && format == "pretty" {
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %d file(s), no problems\n", len(results))
	}
	return nil
}

func countFailed(results []driver.CheckFileResult) int {
	n := 0
	for _, r := range results {
		if r.Errors > 0 {
			n++
		}
	}
	return n
}
