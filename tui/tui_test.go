package tui

import (
	"context"
	"strings"
	"testing"
	"time"
)

// TestStartRefusesDumbTerminal verifies Start declines to draw without a
// usable terminal, and that the push/stop API stays safe afterwards.
func TestStartRefusesDumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")

	err := Start(context.Background(), TUIConfig{Title: "symreg", Mode: "search"})
	if err == nil {
		Stop()
		t.Fatal("Start succeeded without a usable terminal")
	}

	// With no program running these must be no-ops, not panics.
	PushState(StateSnapshot{Generation: 1})
	PushEvent(Event{Timestamp: time.Now(), Type: "BEST", Severity: "info", Message: "x"})
	Stop()
}

// TestRenderSearchProgressBar verifies the budget bar reflects
// generation/budget, caps at 100%, and degrades to a label when the
// budget is unbounded.
func TestRenderSearchProgressBar(t *testing.T) {
	m := NewModel()
	m.ready = true
	m.width = 120

	m.snapshot.Generation = 100
	m.snapshot.MaxGenerations = 200
	out := m.renderSearch()
	if !strings.Contains(out, "50%") {
		t.Errorf("half-spent budget not shown as 50%%:\n%s", out)
	}
	if !strings.Contains(out, "100/200") {
		t.Errorf("gen/budget label missing:\n%s", out)
	}

	m.snapshot.Generation = 500 // past the budget (final report frame)
	out = m.renderSearch()
	if !strings.Contains(out, "100%") {
		t.Errorf("over-budget bar not capped at 100%%:\n%s", out)
	}

	m.snapshot.MaxGenerations = 0
	out = m.renderSearch()
	if !strings.Contains(out, "unbounded") {
		t.Errorf("unbounded budget label missing:\n%s", out)
	}
}

// TestStartSeedsSnapshot verifies the config fields land in the initial
// snapshot (checked through the model directly; Start itself needs a TTY).
func TestStartSeedsSnapshot(t *testing.T) {
	cfg := TUIConfig{Title: "symreg", Mode: "search", Dataset: "built-in", PopSize: 500, MaxGenerations: 300}

	m := NewModel()
	m.snapshot.ProjectName = cfg.Title
	m.snapshot.Mode = cfg.Mode
	m.snapshot.Dataset = cfg.Dataset
	m.snapshot.PopSize = cfg.PopSize
	m.snapshot.MaxGenerations = cfg.MaxGenerations

	header := m.renderHeader()
	for _, want := range []string{"symreg", "search", "built-in"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
}
