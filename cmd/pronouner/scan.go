package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pronouner/internal/diagfmt"
	"pronouner/internal/driver"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <file.xyr>",
	Short: "Print the segments of a dialog file",
	Long:  `Split a dialog file into text, escape and macro segments without decoding macros`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format, "pretty", "json"); err != nil {
		return err
	}

	res, err := driver.Scan(args[0], opts.maxDiagnostics)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens, res.FileSet)
	}
	if err != nil {
		return err
	}
	if res.Bag.Len() > 0 {
		if err := renderDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, "pretty", opts, true); err != nil {
			return err
		}
	}
	return nil
}
