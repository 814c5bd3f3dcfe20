// ABOUTME: Bubbletea model for the conversion progress view
// ABOUTME: Tracks per-file job state and renders it with lipgloss
package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flashvoice/wave2dpcm/internal/app"
	"github.com/flashvoice/wave2dpcm/internal/version"
)

// ProgressMsg carries a job update into the model
type ProgressMsg app.Report

// DoneMsg tells the model every job has finished
type DoneMsg struct{}

type tickMsg time.Time

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	busyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Model represents the TUI state
type Model struct {
	jobs      []app.Report
	mode      string
	startTime time.Time
	elapsed   time.Duration
	finished  bool
	quitting  bool
	quitChan  chan struct{}
	width     int
}

// NewModel creates a model with every input queued
func NewModel(inputs []string, mode string, quitChan chan struct{}) Model {
	jobs := make([]app.Report, len(inputs))
	for i, input := range inputs {
		jobs[i] = app.Report{Index: i, Input: input, State: app.StateQueued}
	}
	return Model{
		jobs:      jobs,
		mode:      mode,
		startTime: time.Now(),
		quitChan:  quitChan,
	}
}

// Init starts the elapsed-time ticker
func (m Model) Init() tea.Cmd {
	return tickEvery()
}

func tickEvery() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			select {
			case m.quitChan <- struct{}{}:
			default:
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		if m.finished {
			return m, nil
		}
		m.elapsed = time.Since(m.startTime).Round(time.Second)
		return m, tickEvery()

	case ProgressMsg:
		m.applyProgress(app.Report(msg))

	case DoneMsg:
		m.finished = true
		m.elapsed = time.Since(m.startTime).Round(time.Second)
		return m, tea.Quit
	}

	return m, nil
}

// applyProgress records a job update; reports for unknown jobs are ignored
func (m *Model) applyProgress(r app.Report) {
	if r.Index < 0 || r.Index >= len(m.jobs) {
		return
	}
	m.jobs[r.Index] = r
}

// Counts returns how many jobs are done, failed and still pending
func (m Model) Counts() (done, failed, pending int) {
	for _, j := range m.jobs {
		switch j.State {
		case app.StateDone:
			done++
		case app.StateFailed:
			failed++
		default:
			pending++
		}
	}
	return done, failed, pending
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return "Cancelling...\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", version.Product, version.Version)))
	b.WriteString("\n\n")

	done, failed, pending := m.Counts()
	b.WriteString(headerStyle.Render("Mode: "))
	b.WriteString(valueStyle.Render(m.mode))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Elapsed: "))
	b.WriteString(valueStyle.Render(m.elapsed.String()))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Files: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d done, %d failed, %d pending", done, failed, pending)))
	b.WriteString("\n\n")

	for _, j := range m.jobs {
		b.WriteString(renderJob(j, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if !m.finished {
		b.WriteString(helpStyle.Render("Press 'q' or Ctrl+C to cancel"))
		b.WriteString("\n")
	}

	return b.String()
}

func renderJob(j app.Report, width int) string {
	name := filepath.Base(j.Input)
	line := fmt.Sprintf("  %s %-24s ", stateIcon(j.State), truncate(name, 24))

	switch j.State {
	case app.StateDone:
		detail := fmt.Sprintf("%d bytes", j.Packed)
		if j.Dropped > 0 {
			detail += fmt.Sprintf(", %d dropped", j.Dropped)
		}
		line += doneStyle.Render(detail)
	case app.StateFailed:
		msg := "failed"
		if j.Err != nil {
			msg = j.Err.Error()
		}
		if width > 40 {
			msg = truncate(msg, width-32)
		}
		line += failStyle.Render(msg)
	case app.StateQueued:
		line += valueStyle.Render(string(j.State))
	default:
		line += busyStyle.Render(string(j.State) + "...")
	}
	return line
}

func stateIcon(s app.State) string {
	switch s {
	case app.StateDone:
		return doneStyle.Render("✓")
	case app.StateFailed:
		return failStyle.Render("✗")
	case app.StateQueued:
		return valueStyle.Render("·")
	default:
		return busyStyle.Render("…")
	}
}

// truncate shortens s to at most length runes, ending in "..." when cut
func truncate(s string, length int) string {
	if length <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	if length <= 3 {
		return string(runes[:length])
	}
	return string(runes[:length-3]) + "..."
}
