package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DialogExt is the extension of dialog sources.
const DialogExt = ".xyr"

// listDialogFiles возвращает отсортированный список всех *.xyr файлов в директории
func listDialogFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, DialogExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandPaths turns a mix of files and directories into a sorted file list.
// Directories contribute their *.xyr files; explicit files are kept whatever
// their extension.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		var found []string
		if info.IsDir() {
			if found, err = listDialogFiles(p); err != nil {
				return nil, err
			}
		} else {
			found = []string{p}
		}
		for _, f := range found {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out, nil
}

// outputPath maps dialogs/<rel>.xyr to out/<rel>.txt.
func outputPath(dialogsDir, outDir, path string) (string, string, error) {
	rel, err := filepath.Rel(dialogsDir, path)
	if err != nil {
		return "", "", err
	}
	rel = filepath.ToSlash(rel)
	target := strings.TrimSuffix(rel, DialogExt) + ".txt"
	return rel, filepath.Join(outDir, filepath.FromSlash(target)), nil
}
