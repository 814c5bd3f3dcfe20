// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program that shows conversion progress
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashvoice/wave2dpcm/internal/app"
)

// TUI shows job progress while a batch runs
type TUI struct {
	program  *tea.Program
	quitChan chan struct{}
}

// New creates a TUI for the given inputs
func New(inputs []string, mode string) *TUI {
	quitChan := make(chan struct{}, 1)
	return &TUI{
		program:  tea.NewProgram(NewModel(inputs, mode, quitChan)),
		quitChan: quitChan,
	}
}

// Run blocks until the batch finishes or the user quits
func (t *TUI) Run() error {
	_, err := t.program.Run()
	return err
}

// Progress forwards a job update; safe to call from worker goroutines
func (t *TUI) Progress(r app.Report) {
	t.program.Send(ProgressMsg(r))
}

// Finish marks the batch complete, which renders the final view and exits
func (t *TUI) Finish() {
	t.program.Send(DoneMsg{})
}

// QuitChan returns the channel that signals when user wants to quit
func (t *TUI) QuitChan() <-chan struct{} {
	return t.quitChan
}
