package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pronouner/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pronouner",
	Short: "Dialog macro compiler",
	Long: `pronouner expands pronoun, name and verb-agreement macros in dialog
text against a cast of characters and a verb dictionary.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
}

// runCleanup is set by setupRun; it flushes the tracer and stops profilers
// once the command ends.
var runCleanup = func() {}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(verbsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("trace", "", "write trace events to file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	// Ассеты: флаги важнее манифеста и переменных окружения
	pf.String("manifest", "", "path to pronouner.toml (default: search upwards from the working directory)")
	pf.String("cast", "", "cast document (.json or .toml)")
	pf.String("dictionary", "", "verb dictionary document (.json or .toml)")
}

// main executes the root command. If execution returns an error, the process
// exits with status code 1.
func main() {
	err := rootCmd.Execute()
	runCleanup()
	if err != nil {
		os.Exit(1)
	}
}

func setupRun(cmd *cobra.Command, _ []string) error {
	if _, err := setupColor(cmd); err != nil {
		return err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	flushTrace, err := setupTracing(cmd)
	if err != nil {
		stopProfiling()
		return err
	}
	runCleanup = func() {
		flushTrace()
		stopProfiling()
	}
	return nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
