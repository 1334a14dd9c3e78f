// Package tui provides the Bubble Tea step-through viewer for the Morse automaton.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/morsetrace/internal/logging"
	"github.com/verte-zerg/morsetrace/internal/model"
	"github.com/verte-zerg/morsetrace/internal/morse"
)

const readyMessage = "Ready to decode. Press space to step or enter to decode all."

type tickMsg struct {
	gen int
}

// Model implements the Bubble Tea step-through UI.
type Model struct {
	config    model.ViewerConfig
	logger    *slog.Logger
	automaton *morse.Automaton
	input     string

	events  []morse.Event
	invalid int

	playing bool
	tickGen int

	editing bool
	editor  textinput.Model

	keys keyMap
	help help.Model

	width  int
	height int
}

var (
	consumedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C5C5C"))
	invalidStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	currentGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	outputStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7FF")).Bold(true)
	footerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cellStyle         = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7CFC00")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

var stateColors = map[morse.State]lipgloss.Color{
	morse.StateStart:       lipgloss.Color("#B0B0B0"),
	morse.StateReading:     lipgloss.Color("#7CFC00"),
	morse.StateResolved:    lipgloss.Color("#5FD7FF"),
	morse.StateLetterBreak: lipgloss.Color("#C89A3A"),
	morse.StateWordBreak:   lipgloss.Color("#D787FF"),
	morse.StateError:       lipgloss.Color("#FF4D4F"),
	morse.StateEnd:         lipgloss.Color("#FFD700"),
}

// NewModel constructs a viewer for input. A nil logger discards logs.
func NewModel(cfg model.ViewerConfig, input string, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.NewNop()
	}
	editor := textinput.New()
	editor.Placeholder = "... --- ... / ... --- ..."
	editor.Prompt = "Morse: "
	m := &Model{
		config:    cfg,
		logger:    logger,
		automaton: morse.New(),
		editor:    editor,
		keys:      newKeyMap(),
		help:      help.New(),
	}
	m.setInput(input)
	m.playing = cfg.Autoplay && input != ""
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.playing {
		return m.tick()
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if !m.playing || msg.gen != m.tickGen {
			return m, nil
		}
		m.step()
		if m.automaton.Done() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Step):
			m.stopPlaying()
			m.step()
		case key.Matches(msg, m.keys.DecodeAll):
			m.stopPlaying()
			m.decodeAll()
		case key.Matches(msg, m.keys.Play):
			if m.playing {
				m.stopPlaying()
				return m, nil
			}
			if m.automaton.Done() {
				return m, nil
			}
			m.playing = true
			return m, m.tick()
		case key.Matches(msg, m.keys.Reset):
			m.stopPlaying()
			m.reset()
		case key.Matches(msg, m.keys.Edit):
			m.stopPlaying()
			m.editing = true
			m.editor.SetValue(m.input)
			m.editor.CursorEnd()
			return m, m.editor.Focus()
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.editing = false
		m.editor.Blur()
		m.setInput(m.editor.Value())
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.editor.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) tick() tea.Cmd {
	m.tickGen++
	gen := m.tickGen
	interval := m.config.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// DefaultInterval is the autoplay delay used when none is configured.
const DefaultInterval = 300 * time.Millisecond

func (m *Model) stopPlaying() {
	m.playing = false
	m.tickGen++
}

func (m *Model) setInput(input string) {
	m.input = input
	m.reset()
}

func (m *Model) reset() {
	m.automaton.Reset(m.input)
	m.events = nil
	m.invalid = 0
	m.logger.Debug("reset", "input", m.input)
}

// step advances the automaton once. Steps past the end are not recorded.
func (m *Model) step() {
	if m.automaton.Done() {
		return
	}
	ev := m.automaton.Step()
	m.events = append(m.events, ev)
	if ev.Action == morse.ActionInvalid {
		m.invalid++
		m.logger.Warn("invalid symbol ignored", "char", string(ev.Char), "pos", ev.Pos)
	}
	m.logger.Debug("step",
		"action", ev.Action.String(),
		"symbol", ev.Symbol.String(),
		"stack", ev.Accumulator,
		"state", ev.State.String(),
		"output", ev.Output,
	)
}

func (m *Model) decodeAll() {
	for !m.automaton.Done() {
		m.step()
	}
}

// Events returns the events recorded since the last reset.
func (m *Model) Events() []morse.Event {
	return m.events
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderContent()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + m.renderFooter()
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	content = lipgloss.NewStyle().Width(contentWidth).Render(m.renderContentWidth(contentWidth))
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 2
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	helpLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.help.View(m.keys))
	return body + "\n" + footerLine + "\n" + helpLine
}

func (m *Model) renderContent() string {
	return m.renderContentWidth(0)
}

func (m *Model) renderContentWidth(width int) string {
	sections := make([]string, 0, 6)
	if m.editing {
		sections = append(sections, m.editor.View())
	} else {
		sections = append(sections, labelStyle.Render("Input")+"\n"+m.renderInput(width))
	}
	sections = append(sections,
		labelStyle.Render("Stack")+"\n"+m.renderStack(),
		labelStyle.Render("Decoded")+"\n"+outputStyle.Render(m.automaton.Output()),
		labelStyle.Render("State")+" "+renderState(m.automaton.State()),
		m.renderAction(),
	)
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderInput(width int) string {
	runes := []rune(m.input)
	if len(runes) == 0 {
		return pendingStyle.Render("(empty, press e to edit)")
	}
	cursorIndex := -1
	if !m.automaton.Done() && m.automaton.Pos() < len(runes) {
		cursorIndex = m.automaton.Pos()
	}
	styled := buildStyledRunes(runes, m.automaton.Pos(), cursorIndex)
	return wrapStyledRunes(styled, width)
}

func (m *Model) renderStack() string {
	acc := m.automaton.Accumulator()
	if acc == "" {
		return pendingStyle.Render("(empty)")
	}
	cells := make([]string, 0, len(acc))
	for _, r := range acc {
		cells = append(cells, cellStyle.Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderState(s morse.State) string {
	color, ok := stateColors[s]
	if !ok {
		color = lipgloss.Color("#B0B0B0")
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(s.String())
}

func (m *Model) renderAction() string {
	ev, ok := m.automaton.Last()
	if !ok {
		return footerStyle.Render(readyMessage)
	}
	return ev.String()
}

func (m *Model) renderFooter() string {
	total := m.automaton.Len()
	progress := 100
	if total > 0 {
		progress = int(float64(m.automaton.Pos()) / float64(total) * 100)
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Steps %d", len(m.events)),
		fmt.Sprintf("Decoded %d", len([]rune(m.automaton.Output()))),
		fmt.Sprintf("Invalid %d", m.invalid),
	}
	if m.playing {
		segments = append(segments, "▶ playing")
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
