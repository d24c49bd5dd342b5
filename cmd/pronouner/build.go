package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pronouner/internal/driver"
	"pronouner/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags]",
	Short: "Compile every dialog of the project",
	Long: `Compile every *.xyr file under the project's dialogs directory into
<out>/<name>.txt. Unchanged files are served from the build cache. The first
failing file stops the build.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	buildCmd.Flags().Int("jobs", 0, "max parallel workers (0=manifest or auto)")
	buildCmd.Flags().String("out", "", "output directory (default from manifest)")
	buildCmd.Flags().Bool("no-cache", false, "ignore and do not update the build cache")
	buildCmd.Flags().Bool("clean-cache", false, "drop the build cache before building")
	buildCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	defer dumpTraceOnPanic()

	opts, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode("ui", uiValue)
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

	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no %s found; run `pronouner init` first", project.ManifestName)
	}
	req, err := buildRequest(cmd, m)
	if err != nil {
		return err
	}

	var res *driver.BuildResult
	if shouldUseTUI(mode) && !opts.quiet {
		res, err = runBuildWithUI(cmd.Context(), "building "+m.Config.Project.Name, req)
	} else {
		res, err = driver.Build(cmd.Context(), req)
	}
	if opts.timings && res != nil {
		printTimings(cmd.ErrOrStderr(), res.Timing)
	}
	if err != nil {
		if res != nil && res.Bag.Len() > 0 {
			if rerr := renderDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, format, opts, true); rerr != nil {
				return rerr
			}
			var ferr *driver.FileError
			if errors.As(err, &ferr) && res.Bag.HasErrors() {
				return errDiagnostics
			}
		}
		return err
	}
	if !opts.quiet {
		printBuildSummary(cmd.OutOrStdout(), res, req.OutDir)
	}
	return nil
}

// buildRequest merges manifest settings with command flags.
func buildRequest(cmd *cobra.Command, m *project.Manifest) (driver.BuildRequest, error) {
	assets, err := resolveAssets(cmd, m)
	if err != nil {
		return driver.BuildRequest{}, err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return driver.BuildRequest{}, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs == 0 {
		jobs = m.Config.Build.Jobs
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return driver.BuildRequest{}, fmt.Errorf("failed to get out flag: %w", err)
	}
	if out == "" {
		out = m.OutDir()
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return driver.BuildRequest{}, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	cleanCache, err := cmd.Flags().GetBool("clean-cache")
	if err != nil {
		return driver.BuildRequest{}, fmt.Errorf("failed to get clean-cache flag: %w", err)
	}

	req := driver.BuildRequest{
		DialogsDir: m.DialogsDir(),
		OutDir:     out,
		Assets:     assets,
		Normalize:  m.Config.Build.Normalization(),
		Jobs:       jobs,
	}
	if !noCache && m.Config.Build.CacheEnabled() {
		cacheDir := ""
		if m.Config.Build.CacheDir != "" {
			cacheDir = m.Resolve(m.Config.Build.CacheDir)
		}
		cache, err := driver.OpenDiskCache("pronouner", cacheDir)
		if err != nil {
			return driver.BuildRequest{}, fmt.Errorf("open build cache: %w", err)
		}
		if cleanCache {
			if err := cache.DropAll(); err != nil {
				return driver.BuildRequest{}, fmt.Errorf("clean build cache: %w", err)
			}
		}
		req.Cache = cache
	}
	return req, nil
}

func printBuildSummary(w io.Writer, res *driver.BuildResult, outDir string) {
	counts := res.Counts()
	fmt.Fprintf(w, "built %d file(s) into %s", len(res.Files), outDir)
	if n := counts[driver.StatusCached]; n > 0 {
		fmt.Fprintf(w, " (%d cached)", n)
	}
	fmt.Fprintln(w)
}

type buildOutcome struct {
	result *driver.BuildResult
	err    error
}

func runBuildWithUI(ctx context.Context, title string, req driver.BuildRequest) (*driver.BuildResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		reqCopy := req
		reqCopy.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.Build(ctx, reqCopy)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	if err := runProgressUI(title, events); err != nil {
		// UI упал: дочитываем события, чтобы сборка не зависла
		go func() {
			for range events {
			}
		}()
		outcome := <-outcomeCh
		return outcome.result, err
	}
	outcome := <-outcomeCh
	return outcome.result, outcome.err
}
