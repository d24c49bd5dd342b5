package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ScaffoldFile is one file written (or kept) by Scaffold.
type ScaffoldFile struct {
	Path    string // relative to the project root
	Existed bool
}

// Scaffold writes a starter project into dir. It refuses to touch a directory
// that already has a manifest; other existing files are kept as they are.
func Scaffold(dir, name string) ([]ScaffoldFile, error) {
	if !IsValidProjectName(name) {
		return nil, fmt.Errorf("invalid project name %q", name)
	}
	if st, err := os.Stat(dir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil, fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	files := []struct {
		rel     string
		content string
	}{
		{ManifestName, defaultManifest(name)},
		{"cast.json", defaultCast},
		{"dictionary.json", defaultDictionary},
		{filepath.Join(DefaultDialogs, "hello.xyr"), defaultDialog},
	}

	created := make([]ScaffoldFile, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.rel)
		if _, err := os.Stat(path); err == nil {
			created = append(created, ScaffoldFile{Path: f.rel, Existed: true})
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return created, fmt.Errorf("failed to create %q: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(f.content), 0o600); err != nil {
			return created, fmt.Errorf("failed to write %s: %w", f.rel, err)
		}
		created = append(created, ScaffoldFile{Path: f.rel})
	}
	return created, nil
}

func defaultManifest(name string) string {
	return fmt.Sprintf(`# pronouner project manifest
[project]
name = %q

[sources]
cast = "cast.json"
dictionary = "dictionary.json"
dialogs = %q

[build]
out = %q
normalize = "nfc"
`, name, DefaultDialogs, DefaultOut)
}

const defaultCast = `{
  "map": {
    "pidge": {
      "name": "Pidge",
      "pronouns": "TheyThem",
      "title": "NoTitle",
      "person_descriptor": "Person"
    },
    "hunk": {
      "name": "Hunk",
      "pronouns": "HeHim",
      "title": "Mr",
      "person_descriptor": "Man"
    }
  }
}
`

const defaultDictionary = `{
  "map": {
    "to be": {
      "debug_ident": "to be",
      "infinitive": "be",
      "singular1": "am",
      "singular2": "are",
      "singular3": "is",
      "plural1": "are",
      "plural2": "are",
      "plural3": "are"
    }
  }
}
`

const defaultDialog = `Do you know {"character_id":"pidge","kind":"Name","data":null,"mods":[]}? ` +
	`{"character_id":"pidge","kind":"SubjectivePronoun","data":null,"mods":["Capitalized"]} ` +
	`{"character_id":"pidge","kind":"VerbConjugate","data":"to be","mods":[]} super smart!
{"character_id":"hunk","kind":"TitlePlusName","data":null,"mods":[]} says {{hi}}.
`
