package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/morsetrace/internal/model"
	"github.com/verte-zerg/morsetrace/internal/morse"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStepKeyAdvancesAutomaton(t *testing.T) {
	m := NewModel(model.ViewerConfig{}, ".- -...", nil)
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(runeKey("n"))
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.automaton.Output(); got != "A" {
		t.Fatalf("expected output A after three steps, got %q", got)
	}
	if len(m.Events()) != 3 {
		t.Fatalf("expected 3 events, got %d", len(m.Events()))
	}
	if m.automaton.State() != morse.StateLetterBreak {
		t.Fatalf("expected letter break state, got %s", m.automaton.State())
	}
}

func TestDecodeAllKeyMatchesDecode(t *testing.T) {
	input := "... --- ... / ... --- ..."
	m := NewModel(model.ViewerConfig{}, input, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.automaton.Output(), morse.Decode(input); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if len(m.Events()) != len([]rune(input))+1 {
		t.Fatalf("expected one event per rune plus end, got %d", len(m.Events()))
	}
	m.Update(runeKey("n"))
	if len(m.Events()) != len([]rune(input))+1 {
		t.Fatalf("steps after end must not be recorded")
	}
}

func TestResetKeyClearsRun(t *testing.T) {
	m := NewModel(model.ViewerConfig{}, ".x", nil)
	m.Update(runeKey("a"))
	if m.invalid != 1 {
		t.Fatalf("expected 1 invalid symbol, got %d", m.invalid)
	}
	m.Update(runeKey("r"))
	if len(m.Events()) != 0 || m.invalid != 0 || m.automaton.Output() != "" {
		t.Fatalf("expected cleared run after reset")
	}
	if m.automaton.State() != morse.StateStart {
		t.Fatalf("expected start state after reset")
	}
}

func TestEditInputCommitsOnEnter(t *testing.T) {
	m := NewModel(model.ViewerConfig{}, "", nil)
	m.Update(runeKey("e"))
	if !m.editing {
		t.Fatalf("expected edit mode")
	}
	m.Update(runeKey("--"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing {
		t.Fatalf("expected edit mode to end on enter")
	}
	if m.input != "--" {
		t.Fatalf("expected input to be committed, got %q", m.input)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.automaton.Output() != "M" {
		t.Fatalf("expected M, got %q", m.automaton.Output())
	}
}

func TestEditInputCancelOnEsc(t *testing.T) {
	m := NewModel(model.ViewerConfig{}, "-", nil)
	m.Update(runeKey("e"))
	m.Update(runeKey("."))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.input != "-" {
		t.Fatalf("expected input unchanged, got %q", m.input)
	}
}

func TestAutoplayTicks(t *testing.T) {
	m := NewModel(model.ViewerConfig{Autoplay: true, Interval: time.Millisecond}, "..", nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected tick command when autoplay is enabled")
	}
	gen := m.tickGen
	for i := 0; i < 3; i++ {
		m.Update(tickMsg{gen: gen})
		gen = m.tickGen
	}
	if !m.automaton.Done() || m.automaton.Output() != "I" {
		t.Fatalf("expected autoplay to finish with I, got %q", m.automaton.Output())
	}
	if m.playing {
		t.Fatalf("expected autoplay to stop at end")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := NewModel(model.ViewerConfig{Autoplay: true}, "..", nil)
	m.Init()
	stale := m.tickGen
	m.Update(runeKey("p"))
	m.Update(tickMsg{gen: stale})
	if len(m.Events()) != 0 {
		t.Fatalf("expected paused autoplay to ignore tick")
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m := NewModel(model.ViewerConfig{}, ".-x-", nil)
	m.Update(runeKey("n"))
	m.Update(runeKey("n"))
	m.Update(runeKey("n"))
	out := m.renderFooter()
	for _, want := range []string{"Progress 75%", "Steps 3", "Decoded 0", "Invalid 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}

func TestViewShowsState(t *testing.T) {
	m := NewModel(model.ViewerConfig{}, "-", nil)
	if !strings.Contains(m.View(), readyMessage) {
		t.Fatalf("expected ready message before first step")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	for _, want := range []string{"END", "T", "End of sequence"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
