package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pronouner/internal/driver"
	"pronouner/internal/project"
	"pronouner/internal/textmod"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] <file.xyr>",
	Short: "Expand the macros of one dialog file",
	Long: `Compile one dialog file against the cast and dictionary and print the
result. Compilation stops at the first error, which is reported as a
diagnostic.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "", "write the result to a file instead of stdout")
	compileCmd.Flags().String("normalize", "", "Unicode normalization of the output (none|nfc); default from manifest")
	compileCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
}

func runCompile(cmd *cobra.Command, args []string) error {
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
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	assets, err := resolveAssets(cmd, m)
	if err != nil {
		return err
	}
	norm, err := resolveNormalization(cmd, m)
	if err != nil {
		return err
	}

	res, err := driver.Compile(cmd.Context(), driver.CompileRequest{
		Path:           args[0],
		Assets:         assets,
		Normalize:      norm,
		MaxDiagnostics: opts.maxDiagnostics,
	})
	if opts.timings && res != nil {
		printTimings(cmd.ErrOrStderr(), res.Timing)
	}
	if err != nil {
		return err
	}
	if res.Bag.HasErrors() {
		if err := renderDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, format, opts, true); err != nil {
			return err
		}
		return errDiagnostics
	}
	return writeOrPrint(cmd.OutOrStdout(), output, res.Output)
}

// resolveNormalization reads --normalize, falling back to the manifest.
func resolveNormalization(cmd *cobra.Command, m *project.Manifest) (textmod.Normalization, error) {
	value, err := cmd.Flags().GetString("normalize")
	if err != nil {
		return textmod.NormNone, fmt.Errorf("failed to get normalize flag: %w", err)
	}
	if value == "" {
		if m != nil {
			return m.Config.Build.Normalization(), nil
		}
		return textmod.NormNone, nil
	}
	n, ok := textmod.ParseNormalization(value)
	if !ok {
		return textmod.NormNone, fmt.Errorf("invalid --normalize value %q (expected none|nfc)", value)
	}
	return n, nil
}
