package tui

import (
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := buildStyledRunes([]rune(".- x"), 1, 1)
	if len(runes) != 4 {
		t.Fatalf("expected 4 runes, got %d", len(runes))
	}
	if runes[0].s != consumedStyle.Render(".") {
		t.Fatalf("expected consumed style for first rune")
	}
	if runes[1].s != currentGroupStyle.Underline(true).Render("-") {
		t.Fatalf("expected underlined current group style for cursor rune")
	}
	if runes[3].s != pendingStyle.Render("x") {
		t.Fatalf("expected pending style for later group")
	}
}

func TestBuildStyledRunesInvalidConsumed(t *testing.T) {
	runes := buildStyledRunes([]rune(".x-"), 3, -1)
	if runes[1].s != invalidStyle.Render("x") {
		t.Fatalf("expected invalid style for consumed invalid rune")
	}
	if runes[2].s != consumedStyle.Render("-") {
		t.Fatalf("expected consumed style for last rune")
	}
}

func TestBuildStyledRunesCursorOnGap(t *testing.T) {
	runes := buildStyledRunes([]rune(". -"), 1, 1)
	if runes[1].s != pendingStyle.Underline(true).Render("·") {
		t.Fatalf("expected visible cursor on letter gap")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected gap to remain a wrap point")
	}
}

func TestFindGroups(t *testing.T) {
	groups := findGroups([]rune(" .- / -.. "))
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0] != (groupRange{start: 1, end: 3}) || groups[1] != (groupRange{start: 6, end: 9}) {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestWrapStyledRunesBreaksOnSpace(t *testing.T) {
	runes := buildStyledRunes([]rune("... --- ..."), 0, -1)
	out := wrapStyledRunes(runes, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	runes := buildStyledRunes([]rune("-- --"), 0, -1)
	if wrapStyledRunes(runes, 0) != renderStyledRunes(runes) {
		t.Fatalf("expected unwrapped output for zero width")
	}
}

func TestConsumedRunesDimmerThanPending(t *testing.T) {
	consumed := styleBrightness(t, consumedStyle)
	pending := styleBrightness(t, pendingStyle)
	if consumed >= pending {
		t.Fatalf("expected consumed runes dimmer than pending, got %d >= %d", consumed, pending)
	}
}

func styleBrightness(t *testing.T, style lipgloss.Style) int {
	t.Helper()
	c, ok := style.GetForeground().(lipgloss.Color)
	if !ok || len(c) != 7 || c[0] != '#' {
		t.Fatalf("expected hex foreground, got %v", style.GetForeground())
	}
	total := 0
	for i := 1; i < 7; i += 2 {
		v, err := strconv.ParseUint(string(c[i:i+2]), 16, 8)
		if err != nil {
			t.Fatalf("parse %q: %v", c, err)
		}
		total += int(v)
	}
	return total
}
