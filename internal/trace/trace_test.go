package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		kind  Kind
		want  bool
	}{
		{LevelOff, ScopeDriver, KindError, false},
		{LevelError, ScopeDriver, KindSpanBegin, false},
		{LevelError, ScopeFile, KindError, true},
		{LevelPhase, ScopePass, KindSpanEnd, true},
		{LevelPhase, ScopeFile, KindSpanBegin, false},
		{LevelDetail, ScopeFile, KindSpanBegin, true},
		{LevelDetail, ScopeFile, KindPoint, false},
		{LevelDebug, ScopeFile, KindPoint, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope, tt.kind); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v, %v) = %v, want %v", tt.level, tt.scope, tt.kind, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(verbose) should fail")
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)

	span, ctx := BeginCtx(ctx, ScopeDriver, "build")
	file, _ := BeginCtx(ctx, ScopeFile, "file:a.xyr")
	file.WithExtra("bytes", "12").End("")
	Point(ctx, ScopeFile, "cache", "hit") // filtered at detail
	span.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d events:\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatalf("bad ndjson: %v", err)
	}
	if ev.Kind != "end" || ev.Name != "file:a.xyr" || ev.Extra["bytes"] != "12" || ev.ParentID == 0 {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestRingDump(t *testing.T) {
	ring := NewRingTracer(2, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	Point(ctx, ScopeDriver, "one", "")
	Point(ctx, ScopeDriver, "two", "")
	Error(ctx, ScopeDriver, "three", errors.New("boom"))

	var buf bytes.Buffer
	if err := RingOf(ring).Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "one") || !strings.Contains(out, "two") || !strings.Contains(out, "! three (boom)") {
		t.Errorf("ring should keep the last two events:\n%s", out)
	}
}

func TestNopContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context should yield Nop")
	}
	span, ctx := BeginCtx(context.Background(), ScopeDriver, "x")
	if span.ID() != 0 || CurrentSpan(ctx).SpanID != 0 {
		t.Error("nop span should not get an id")
	}
	if span.End("") != 0 {
		t.Error("nop span should report zero duration")
	}
}

func TestNewOff(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Errorf("New(off) = %v, %v", tr, err)
	}
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	if RingOf(tr) == nil {
		t.Error("both mode should expose a ring")
	}
}
