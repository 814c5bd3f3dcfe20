// ABOUTME: Tests for TUI model and state management
// ABOUTME: Tests progress updates, completion, quitting and rendering
package ui

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashvoice/wave2dpcm/internal/app"
)

func TestNewModel(t *testing.T) {
	model := NewModel([]string{"a.wav", "b.wav"}, "2bit", nil)

	if len(model.jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(model.jobs))
	}
	for i, j := range model.jobs {
		if j.State != app.StateQueued {
			t.Errorf("job %d: expected queued, got %s", i, j.State)
		}
		if j.Index != i {
			t.Errorf("job %d: expected index %d, got %d", i, i, j.Index)
		}
	}

	done, failed, pending := model.Counts()
	if done != 0 || failed != 0 || pending != 2 {
		t.Errorf("expected 0/0/2, got %d/%d/%d", done, failed, pending)
	}
}

func TestProgressMsg(t *testing.T) {
	model := NewModel([]string{"a.wav", "b.wav"}, "2bit", nil)

	updated, _ := model.Update(ProgressMsg(app.Report{Index: 1, Input: "b.wav", State: app.StateDone, Packed: 42}))
	m := updated.(Model)

	if m.jobs[1].State != app.StateDone {
		t.Errorf("expected job 1 done, got %s", m.jobs[1].State)
	}
	if m.jobs[0].State != app.StateQueued {
		t.Errorf("expected job 0 still queued, got %s", m.jobs[0].State)
	}

	done, _, pending := m.Counts()
	if done != 1 || pending != 1 {
		t.Errorf("expected 1 done and 1 pending, got %d and %d", done, pending)
	}
}

func TestProgressMsgOutOfRange(t *testing.T) {
	model := NewModel([]string{"a.wav"}, "1bit", nil)

	updated, _ := model.Update(ProgressMsg(app.Report{Index: 5, State: app.StateDone}))
	m := updated.(Model)

	if _, _, pending := m.Counts(); pending != 1 {
		t.Errorf("expected unknown job to be ignored, got %d pending", pending)
	}
}

func TestDoneMsgQuits(t *testing.T) {
	model := NewModel([]string{"a.wav"}, "1bit", nil)

	updated, cmd := model.Update(DoneMsg{})
	m := updated.(Model)

	if !m.finished {
		t.Error("expected model to be finished")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg from DoneMsg")
	}
}

func TestQuitKeySignals(t *testing.T) {
	quitChan := make(chan struct{}, 1)
	model := NewModel([]string{"a.wav"}, "1bit", quitChan)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m := updated.(Model)

	if !m.quitting {
		t.Error("expected quitting after 'q'")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	select {
	case <-quitChan:
	default:
		t.Error("expected quit signal on channel")
	}

	if !strings.Contains(m.View(), "Cancelling") {
		t.Error("expected cancelling view")
	}
}

func TestView(t *testing.T) {
	model := NewModel([]string{"/sounds/one.wav", "/sounds/two.wav", "/sounds/three.wav"}, "2bit", nil)
	model.applyProgress(app.Report{Index: 0, Input: "/sounds/one.wav", State: app.StateDone, Packed: 1200, Dropped: 3})
	model.applyProgress(app.Report{Index: 1, Input: "/sounds/two.wav", State: app.StateFailed, Err: errors.New("degenerate input")})
	model.applyProgress(app.Report{Index: 2, Input: "/sounds/three.wav", State: app.StateEncoding})

	view := model.View()

	for _, want := range []string{"one.wav", "1200 bytes", "3 dropped", "degenerate input", "encoding", "1 done, 1 failed, 1 pending"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestTruncateFunction(t *testing.T) {
	tests := []struct {
		input    string
		length   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a very long string", 10, "this is..."},
		{"héllo wörld.wav", 8, "héllo..."},
		{"日本語のファイル名.wav", 6, "日本語..."},
		{"abcdef", 3, "abc"},
		{"abcdef", 0, ""},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.length)
		if !utf8.ValidString(result) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.input, tt.length)
		}
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.length, result, tt.expected)
		}
	}
}
