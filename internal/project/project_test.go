package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pronouner/internal/project"
	"pronouner/internal/textmod"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const minimal = `
[project]
name = "demo"

[sources]
cast = "assets/cast.toml"
dictionary = "assets/dictionary.json"
`

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	m, err := project.Load(writeManifest(t, dir, minimal))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Sources.Dialogs != project.DefaultDialogs || m.Config.Build.Out != project.DefaultOut {
		t.Errorf("defaults not applied: %+v", m.Config)
	}
	if !m.Config.Build.CacheEnabled() {
		t.Error("cache should default to enabled")
	}
	if m.Config.Build.Normalization() != textmod.NormNone {
		t.Errorf("normalization = %v", m.Config.Build.Normalization())
	}
	if got, want := m.CastPath(), filepath.Join(m.Root, "assets", "cast.toml"); got != want {
		t.Errorf("CastPath() = %q, want %q", got, want)
	}
	if got, want := m.OutDir(), filepath.Join(m.Root, "build"); got != want {
		t.Errorf("OutDir() = %q, want %q", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"syntax", "[project\nname=", "failed to parse TOML"},
		{"no name", "[sources]\ncast = \"c.json\"\ndictionary = \"d.json\"\n", "missing [project].name"},
		{"bad name", "[project]\nname = \"9lives\"\n[sources]\ncast = \"c.json\"\ndictionary = \"d.json\"\n", "bad [project].name"},
		{"no cast", "[project]\nname = \"x\"\n[sources]\ndictionary = \"d.json\"\n", "missing [sources].cast"},
		{"no dictionary", "[project]\nname = \"x\"\n[sources]\ncast = \"c.json\"\n", "missing [sources].dictionary"},
		{"normalize", minimal + "[build]\nnormalize = \"nfkd\"\n", "[build].normalize"},
		{"jobs", minimal + "[build]\njobs = -2\n", "[build].jobs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := project.Load(writeManifest(t, t.TempDir(), tt.body))
			if !errors.Is(err, project.ErrInvalidManifest) {
				t.Fatalf("got %v, want ErrInvalidManifest", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, minimal)
	deep := filepath.Join(root, "dialogs", "act1")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := project.Discover(deep)
	if err != nil || !ok {
		t.Fatalf("Discover: ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(root)
	if m.Root != want {
		t.Errorf("Root = %q, want %q", m.Root, want)
	}
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	m, err := project.Load(writeManifest(t, dir, minimal))
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("PRONOUNER_JOBS", "3")
	t.Setenv("PRONOUNER_NORMALIZE", "nfc")
	t.Setenv("PRONOUNER_NO_CACHE", "true")
	t.Setenv("PRONOUNER_OUT", "/tmp/pronouner-out")

	o, err := project.ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if err := m.ApplyEnv(o); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	b := m.Config.Build
	if b.Jobs != 3 || b.Normalization() != textmod.NormNFC || b.CacheEnabled() || m.OutDir() != "/tmp/pronouner-out" {
		t.Errorf("overrides not applied: %+v", b)
	}
	if m.Config.Sources.Cast != "assets/cast.toml" {
		t.Errorf("unset variables must not override: %q", m.Config.Sources.Cast)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	m, err := project.Load(writeManifest(t, t.TempDir(), minimal))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.ApplyEnv(project.EnvOverrides{Normalize: "loud"}); err == nil {
		t.Fatal("expected error")
	}
	if m.Config.Build.Normalize != "" {
		t.Errorf("failed ApplyEnv must not change config: %q", m.Config.Build.Normalize)
	}

	t.Setenv("PRONOUNER_JOBS", "many")
	if _, err := project.ParseEnv(); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("ParseEnv error = %v", err)
	}
}

func TestScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "story")
	files, err := project.Scaffold(dir, "story")
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("files = %+v", files)
	}
	m, err := project.Load(filepath.Join(dir, project.ManifestName))
	if err != nil {
		t.Fatalf("scaffolded manifest does not load: %v", err)
	}
	if m.Config.Project.Name != "story" {
		t.Errorf("name = %q", m.Config.Project.Name)
	}
	if _, err := os.Stat(filepath.Join(m.DialogsDir(), "hello.xyr")); err != nil {
		t.Errorf("hello.xyr: %v", err)
	}
	if _, err := project.Scaffold(dir, "story"); err == nil {
		t.Error("second Scaffold should refuse")
	}
}

func TestCombine(t *testing.T) {
	a := project.StringDigest("a")
	b := project.StringDigest("b")
	if project.Combine(a, b) == project.Combine(b, a) {
		t.Error("Combine must depend on order")
	}
	if project.Combine(a, b) != project.Combine(a, b) {
		t.Error("Combine must be deterministic")
	}
	if project.Combine(a) == a {
		t.Error("Combine(a) should hash, not copy")
	}
}
