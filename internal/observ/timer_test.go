package observ

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load")
	tm.End(idx, "2 files")
	if err := tm.Measure("compile", func() error { return errors.New("x") }); err == nil {
		t.Fatal("Measure should pass the error through")
	}
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if r.Phases[0].Note != "2 files" || r.Phases[1].Note != "failed" {
		t.Errorf("notes = %q, %q", r.Phases[0].Note, r.Phases[1].Note)
	}
	s := r.Summary()
	for _, want := range []string{"load", "compile", "// failed", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	if err := tm.Measure("x", func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	if len(tm.Report().Phases) != 0 {
		t.Error("nil timer should report nothing")
	}
}
