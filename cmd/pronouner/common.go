package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pronouner/internal/diag"
	"pronouner/internal/diagfmt"
	"pronouner/internal/driver"
	"pronouner/internal/project"
	"pronouner/internal/source"
)

// errDiagnostics is returned after diagnostics were printed, so cobra only
// sets the exit code.
var errDiagnostics = errors.New("diagnostics reported errors")

type globalOptions struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
}

// setupColor resolves --color and applies it to fatih/color globally.
func setupColor(cmd *cobra.Command) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readUIMode("color", value)
	if err != nil {
		return false, err
	}
	var enabled bool
	switch mode {
	case uiModeOn:
		enabled = true
	case uiModeOff:
		enabled = false
	default:
		enabled = isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == ""
	}
	color.NoColor = !enabled
	return enabled, nil
}

func readGlobalOptions(cmd *cobra.Command) (globalOptions, error) {
	pf := cmd.Root().PersistentFlags()
	var opts globalOptions
	var err error
	if opts.quiet, err = pf.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = pf.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.color = !color.NoColor
	return opts, nil
}

// loadManifest finds the project manifest (--manifest or upward search from
// the working directory) and overlays PRONOUNER_* variables. A missing
// manifest is not an error unless --manifest named one.
func loadManifest(cmd *cobra.Command) (*project.Manifest, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("manifest")
	if err != nil {
		return nil, fmt.Errorf("failed to get manifest flag: %w", err)
	}

	var m *project.Manifest
	if explicit != "" {
		if m, err = project.Load(explicit); err != nil {
			return nil, err
		}
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		found, ok, err := project.Discover(wd)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		m = found
	}

	overrides, err := project.ParseEnv()
	if err != nil {
		return nil, err
	}
	if err := m.ApplyEnv(overrides); err != nil {
		return nil, fmt.Errorf("%s: %w", m.Path, err)
	}
	return m, nil
}

// resolveAssets picks cast and dictionary paths: flags, then manifest (with
// environment overrides), then bare environment variables.
func resolveAssets(cmd *cobra.Command, m *project.Manifest) (driver.AssetPaths, error) {
	pf := cmd.Root().PersistentFlags()
	castFlag, err := pf.GetString("cast")
	if err != nil {
		return driver.AssetPaths{}, fmt.Errorf("failed to get cast flag: %w", err)
	}
	dictFlag, err := pf.GetString("dictionary")
	if err != nil {
		return driver.AssetPaths{}, fmt.Errorf("failed to get dictionary flag: %w", err)
	}

	var paths driver.AssetPaths
	switch {
	case m != nil:
		paths = driver.AssetPaths{Cast: m.CastPath(), Dictionary: m.DictionaryPath()}
	default:
		overrides, err := project.ParseEnv()
		if err != nil {
			return driver.AssetPaths{}, err
		}
		paths = driver.AssetPaths{Cast: overrides.Cast, Dictionary: overrides.Dictionary}
	}
	if castFlag != "" {
		paths.Cast = castFlag
	}
	if dictFlag != "" {
		paths.Dictionary = dictFlag
	}
	if paths.Cast == "" || paths.Dictionary == "" {
		return paths, fmt.Errorf("no cast or dictionary: pass --cast and --dictionary or run inside a project with %s", project.ManifestName)
	}
	return paths, nil
}

// renderDiagnostics prints bag in the requested format.
func renderDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, format string, opts globalOptions, withNotes bool) error {
	switch format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     opts.color,
			Context:   1,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: withNotes,
			ShowFixes: withNotes,
		})
		return nil
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			Max:              opts.maxDiagnostics,
			IncludeNotes:     withNotes,
			IncludeFixes:     withNotes,
			IncludePreviews:  withNotes,
		})
	case "short":
		_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, withNotes))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q", format)
}

// writeOrPrint writes content to path, or to w when path is empty or "-".
func writeOrPrint(w io.Writer, path, content string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(w, content)
		return err
	}
	// #nosec G306 -- compiled dialogs are meant to be read by other tools
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%s: %w", diag.IOWriteFileError.ID(), err)
	}
	return nil
}
