package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles (defined at package init for reuse)
var (
	// Color styles
	styleGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	styleRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Panel styles
	stylePanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	styleEventInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	styleEventWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	styleEventError = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	stats := m.renderStats()
	search := m.renderSearch()
	best := m.renderBestExpr()
	events := m.renderEvents()
	footer := m.renderFooter()

	// Stack panels vertically
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, stats, search),
		best,
		events,
		footer,
	)

	return body
}

func (m Model) renderHeader() string {
	runtime := time.Since(m.snapshot.StartTime)
	return styleHeader.Render(fmt.Sprintf(
		"%s │ mode=%s │ data=%s │ runtime=%s",
		m.snapshot.ProjectName,
		m.snapshot.Mode,
		m.snapshot.Dataset,
		FormatDuration(runtime),
	))
}

func (m Model) renderStats() string {
	return stylePanel.Width(50).Render(fmt.Sprintf(
		"Fit: best=%s │ median=%s │ %s",
		m.errChangeColor(m.snapshot.BestError),
		m.errColor(m.snapshot.MedianError),
		m.solvedLabel(),
	))
}

func (m Model) renderSearch() string {
	genLabel := fmt.Sprintf("%d", m.snapshot.Generation)
	bar := styleDim.Render("budget: unbounded")
	if m.snapshot.MaxGenerations > 0 {
		genLabel = fmt.Sprintf("%d/%d", m.snapshot.Generation, m.snapshot.MaxGenerations)
		pct := float64(m.snapshot.Generation) / float64(m.snapshot.MaxGenerations)
		if pct > 1 {
			pct = 1
		}
		bar = m.progress.ViewAs(pct)
	}
	return stylePanel.Width(50).Render(fmt.Sprintf(
		"Search: gen=%s │ pop=%d │ meanSize=%.1f │ %.1f gen/s\n%s",
		genLabel,
		m.snapshot.PopSize,
		m.snapshot.MeanSize,
		m.snapshot.RatePerSec,
		bar,
	))
}

func (m Model) renderBestExpr() string {
	expr := m.snapshot.BestExpr
	if expr == "" {
		return stylePanel.Render(fmt.Sprintf("Best: %s", styleDim.Render("(none yet)")))
	}
	maxLen := m.width - 12
	if maxLen > 0 && len(expr) > maxLen {
		expr = expr[:maxLen] + "…"
	}
	return stylePanel.Render("Best: " + styleGreen.Render(expr))
}

func (m Model) renderEvents() string {
	// viewport.Model is a struct, not a pointer - never nil
	// Content is updated in Update() on MsgEvent, not here
	if !m.ready || m.width == 0 {
		return stylePanel.Render("Events: initializing...")
	}
	return stylePanel.Render("Events (scroll):") + "\n" + m.viewport.View()
}

func (m Model) renderFooter() string {
	hints := []string{"q: quit", "p: pause", "d: debug"}
	if m.paused {
		hints = append(hints, "(PAUSED)")
	}

	hintStrings := make([]string, len(hints))
	for i, h := range hints {
		hintStrings[i] = styleDim.Render(h)
	}

	return styleGray.Render("│ " + strings.Join(hintStrings, " │ ") + " │")
}

// Color helper functions

func (m Model) solvedLabel() string {
	if m.snapshot.Solved {
		return styleGreen.Render("SOLVED")
	}
	return styleDim.Render("searching")
}

func (m Model) errColor(err float64) string {
	if err < 0.1 {
		return styleGreen.Render(fmt.Sprintf("%.4f", err))
	}
	if err < 1.0 {
		return styleYellow.Render(fmt.Sprintf("%.4f", err))
	}
	return styleRed.Render(fmt.Sprintf("%.4f", err))
}

func (m Model) errChangeColor(err float64) string {
	// Compare with previous best (lower is better)
	if err < m.prevBest {
		return styleGreen.Render(fmt.Sprintf("%.4f ↓", err))
	}
	if err > m.prevBest {
		return styleRed.Render(fmt.Sprintf("%.4f ↑", err))
	}
	return styleDim.Render(fmt.Sprintf("%.4f =", err))
}

func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
