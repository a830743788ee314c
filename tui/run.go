package tui

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// TUIConfig seeds the dashboard with what is known before the first
// generation reports in.
type TUIConfig struct {
	Title          string
	Mode           string // "search" or "eval"
	Dataset        string
	PopSize        int
	MaxGenerations int // 0 = unbounded
}

var (
	mu      sync.RWMutex
	program *tea.Program
	done    chan struct{}
)

// Start launches the dashboard in the background. The search loop keeps
// running in the caller's goroutine and feeds the dashboard through
// PushState/PushEvent. Returns an error when no dashboard can be drawn
// (non-TTY, TERM=dumb); the search must carry on without it.
func Start(ctx context.Context, cfg TUIConfig) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("dashboard disabled (not a TTY)")
	}
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("dashboard disabled (TERM=dumb)")
	}

	m := NewModel()
	m.snapshot.ProjectName = cfg.Title
	m.snapshot.Mode = cfg.Mode
	m.snapshot.Dataset = cfg.Dataset
	m.snapshot.PopSize = cfg.PopSize
	m.snapshot.MaxGenerations = cfg.MaxGenerations

	p := tea.NewProgram(m, tea.WithContext(ctx))
	d := make(chan struct{})

	mu.Lock()
	program = p
	done = d
	mu.Unlock()

	go func() {
		_, _ = p.Run()
		close(d)
	}()

	return nil
}

// Stop asks the dashboard to quit and waits for it to restore the
// terminal, so the run summary printed afterwards lands on a clean
// screen. No-op when Start never succeeded.
func Stop() {
	mu.RLock()
	p, d := program, done
	mu.RUnlock()
	if p == nil {
		return
	}

	p.Send(MsgShutdown{})
	select {
	case <-d:
	case <-time.After(2 * time.Second):
		// Don't hang shutdown on a wedged terminal.
	}

	mu.Lock()
	program = nil
	done = nil
	mu.Unlock()
}

// PushState replaces the displayed search state. Safe from any goroutine.
func PushState(s StateSnapshot) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgStateSnapshot(s))
	}
}

// PushEvent appends to the scrolling event feed. Safe from any goroutine.
func PushEvent(e Event) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgEvent(e))
	}
}
