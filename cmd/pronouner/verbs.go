package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pronouner/internal/assets"
	"pronouner/internal/grammar"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs [flags] [key]...",
	Short: "Print conjugation tables of the dictionary",
	Long:  `Print the conjugation table of every verb, or only of the given keys. Missing forms show as N/A.`,
	RunE:  runVerbs,
}

func init() {
	verbsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVerbs(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format, "pretty", "json"); err != nil {
		return err
	}
	path, err := dictionaryPath(cmd)
	if err != nil {
		return err
	}
	dict, _, err := assets.LoadDictionary(path)
	if err != nil {
		return err
	}

	keys := args
	if len(keys) == 0 {
		keys = dict.Keys()
	}
	selected := grammar.NewDictionary()
	var missing []string
	for _, key := range keys {
		v, ok := dict.Get(key)
		if !ok {
			missing = append(missing, key)
			continue
		}
		selected.Insert(key, v)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", grammar.ErrUnknownVerbKey, strings.Join(missing, ", "))
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(selected)
	}
	for i, key := range keys {
		if i > 0 {
			fmt.Fprintln(out)
		}
		v, _ := selected.Get(key)
		fmt.Fprint(out, v.String())
	}
	return nil
}

// dictionaryPath needs only the dictionary, so a missing cast is fine here.
func dictionaryPath(cmd *cobra.Command) (string, error) {
	flag, err := cmd.Root().PersistentFlags().GetString("dictionary")
	if err != nil {
		return "", fmt.Errorf("failed to get dictionary flag: %w", err)
	}
	if flag != "" {
		return flag, nil
	}
	m, err := loadManifest(cmd)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", fmt.Errorf("no dictionary: pass --dictionary or run inside a project")
	}
	return m.DictionaryPath(), nil
}
