package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pronouner/internal/grammar"
	"pronouner/internal/project"
)

const helloOutput = "Do you know Pidge? They are super smart!\nMr. Hunk says {hi}.\n"

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--color", "off", "--quiet=false"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func scaffold(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := project.Scaffold(dir, "demo"); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCLICompileAndBuild(t *testing.T) {
	dir := scaffold(t)
	manifest := filepath.Join(dir, project.ManifestName)
	hello := filepath.Join(dir, "dialogs", "hello.xyr")

	out, _, err := runCLI(t, "--manifest", manifest, "compile", "--format", "pretty", "--output", "", hello)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if out != helloOutput {
		t.Fatalf("compile output = %q", out)
	}

	out, _, err = runCLI(t, "--manifest", manifest, "build", "--ui", "off", "--no-cache", "--jobs", "2", "--out", "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, "built 1 file(s)") {
		t.Fatalf("build output = %q", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "build", "hello.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != helloOutput {
		t.Fatalf("built file = %q", data)
	}
}

func TestCLICheckReportsErrors(t *testing.T) {
	dir := scaffold(t)
	manifest := filepath.Join(dir, project.ManifestName)
	bad := filepath.Join(dir, "dialogs", "bad.xyr")
	if err := os.WriteFile(bad, []byte(`{"character_id":"lance","kind":"Name"} }`), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "--manifest", manifest, "check", "--format", "short", "--jobs", "0", "--with-notes=false")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("err = %v, want errDiagnostics", err)
	}
	for _, want := range []string{"GRM3001", "SCN1001", "bad.xyr"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hello.xyr") {
		t.Errorf("clean file reported:\n%s", out)
	}
}

func TestCLIVerbs(t *testing.T) {
	dir := scaffold(t)
	out, _, err := runCLI(t, "--manifest", filepath.Join(dir, project.ManifestName), "verbs", "--format", "pretty", "to be")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "He/she/it is.") {
		t.Fatalf("verbs output = %q", out)
	}

	_, _, err = runCLI(t, "--manifest", filepath.Join(dir, project.ManifestName), "verbs", "--format", "pretty", "to fly")
	if !errors.Is(err, grammar.ErrUnknownVerbKey) {
		t.Fatalf("err = %v", err)
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode("ui", in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("color", "sometimes"); err == nil || !strings.Contains(err.Error(), "--color") {
		t.Errorf("err = %v", err)
	}
}

func TestProjectNameFor(t *testing.T) {
	cases := map[string]string{
		"/tmp/my game":  "my-game",
		"/tmp/quest_01": "quest_01",
		"/tmp/2024":     "_2024",
		"/tmp/***":      "dialogs-project",
	}
	for dir, want := range cases {
		if got := projectNameFor(dir); got != want {
			t.Errorf("projectNameFor(%q) = %q, want %q", dir, got, want)
		}
	}
}

func TestPromptPlayerLines(t *testing.T) {
	var out bytes.Buffer
	ch, err := promptPlayerLines(strings.NewReader("\nAsh\n9\n2\n"), &out, "")
	if err != nil {
		t.Fatal(err)
	}
	if ch.Name != "Ash" || ch.Pronouns.Preset != grammar.SheHer {
		t.Fatalf("character = %+v", ch)
	}
	if !strings.Contains(out.String(), "please enter a number") {
		t.Fatalf("prompt output = %q", out.String())
	}

	ch, err = promptPlayerLines(strings.NewReader("\n"), &out, "Rin")
	if err != nil {
		t.Fatal(err)
	}
	if ch.Pronouns.Preset != grammar.TheyThem {
		t.Fatalf("default preset = %v", ch.Pronouns.Preset)
	}

	if _, err := promptPlayerLines(strings.NewReader(""), &out, ""); err == nil {
		t.Fatal("expected error on empty input")
	}
}
