package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"pronouner/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new pronouner project",
	Long: `Initialize a new project by creating a manifest (pronouner.toml), a starter
cast and dictionary and a hello dialog. If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var nameCleaner = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func runInit(cmd *cobra.Command, args []string) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else if target, err = filepath.Abs(args[0]); err != nil {
		return err
	}

	files, err := project.Scaffold(target, projectNameFor(target))
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "initialized project in %s\n", target)
	for _, f := range files {
		if f.Existed {
			fmt.Fprintf(out, "  kept    %s\n", filepath.ToSlash(f.Path))
			continue
		}
		fmt.Fprintf(out, "  created %s\n", filepath.ToSlash(f.Path))
	}
	return nil
}

// projectNameFor derives a valid project name from the directory basename,
// falling back to "dialogs-project".
func projectNameFor(dir string) string {
	name := strings.TrimSpace(filepath.Base(dir))
	name = nameCleaner.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return "dialogs-project"
	}
	if !project.IsValidProjectName(name) {
		name = "_" + name
	}
	if !project.IsValidProjectName(name) {
		return "dialogs-project"
	}
	return name
}
