package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pronouner/internal/driver"
	"pronouner/internal/grammar"
	"pronouner/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play [flags] <file.xyr>",
	Short: "Compile a dialog for a player character",
	Long: `Ask for the player's name and pronouns, add them to the cast as
"player" and compile the dialog. --name and --pronouns skip the questions.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().String("name", "", "player name")
	playCmd.Flags().String("pronouns", "", "player pronouns (TheyThem|SheHer|HeHim|XeXyr|ItIts|Name)")
	playCmd.Flags().String("ui", "auto", "interactive prompt (auto|on|off)")
	playCmd.Flags().String("normalize", "", "Unicode normalization of the output (none|nfc); default from manifest")
}

func runPlay(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	opts, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}
	pronounsTag, err := cmd.Flags().GetString("pronouns")
	if err != nil {
		return fmt.Errorf("failed to get pronouns flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode("ui", uiValue)
	if err != nil {
		return err
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

	var player grammar.Character
	switch {
	case name != "" && pronounsTag != "":
		preset, ok := grammar.ParsePreset(pronounsTag)
		if !ok || preset == grammar.CustomSet {
			return fmt.Errorf("unknown pronouns %q", pronounsTag)
		}
		player = grammar.NewCharacter(name, grammar.PresetPronouns(preset))
	case shouldUseTUI(mode):
		player, err = ui.PromptPlayer(name)
	default:
		player, err = promptPlayerLines(cmd.InOrStdin(), cmd.ErrOrStderr(), name)
	}
	if err != nil {
		return err
	}

	res, err := driver.Compile(cmd.Context(), driver.CompileRequest{
		Path:           args[0],
		Assets:         assets,
		Player:         &player,
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
		if err := renderDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, "pretty", opts, true); err != nil {
			return err
		}
		return errDiagnostics
	}
	return writeOrPrint(cmd.OutOrStdout(), "", res.Output)
}

// promptPlayerLines is the prompt for pipes and dumb terminals.
func promptPlayerLines(in io.Reader, out io.Writer, name string) (grammar.Character, error) {
	r := bufio.NewReader(in)
	for strings.TrimSpace(name) == "" {
		fmt.Fprint(out, "What is your name? ")
		line, err := r.ReadString('\n')
		name = strings.TrimSpace(line)
		if err != nil {
			if errors.Is(err, io.EOF) && name != "" {
				break
			}
			return grammar.Character{}, fmt.Errorf("read name: %w", err)
		}
	}

	fmt.Fprintf(out, "Which pronouns should %s use?\n", name)
	for i, preset := range ui.PronounChoices {
		fmt.Fprintf(out, "  %d) %s\n", i+1, ui.ChoiceLabel(preset, name))
	}
	for {
		fmt.Fprintf(out, "Choose 1-%d [1]: ", len(ui.PronounChoices))
		line, err := r.ReadString('\n')
		choice := strings.TrimSpace(line)
		if choice == "" && err == nil {
			choice = "1"
		}
		if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(ui.PronounChoices) {
			return grammar.NewCharacter(name, grammar.PresetPronouns(ui.PronounChoices[n-1])), nil
		}
		if err != nil {
			return grammar.Character{}, fmt.Errorf("read pronouns: %w", err)
		}
		fmt.Fprintln(out, "please enter a number from the list")
	}
}

