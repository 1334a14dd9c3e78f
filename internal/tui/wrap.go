package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/morsetrace/internal/morse"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes styles the input around the automaton cursor. Runes before
// pos are consumed; cursorIndex is -1 once the automaton is done.
func buildStyledRunes(input []rune, pos, cursorIndex int) []styledRune {
	groups := findGroups(input)
	current := groupForCursor(groups, cursorIndex)

	out := make([]styledRune, 0, len(input))
	for i, r := range input {
		displayed := r
		style := pendingStyle
		switch {
		case i < pos && morse.Classify(r) == morse.Invalid:
			style = invalidStyle
		case i < pos:
			style = consumedStyle
		case current != nil && i >= current.start && i < current.end:
			style = currentGroupStyle
		}
		if i == cursorIndex {
			if r == ' ' {
				displayed = '·'
			}
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: r == ' ',
		})
	}
	return out
}

type groupRange struct {
	start int
	end   int
}

// findGroups returns the runs of input between letter and word gaps.
func findGroups(input []rune) []groupRange {
	groups := []groupRange{}
	start := -1
	for i, r := range input {
		if isGap(r) {
			if start != -1 {
				groups = append(groups, groupRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		groups = append(groups, groupRange{start: start, end: len(input)})
	}
	return groups
}

func isGap(r rune) bool {
	s := morse.Classify(r)
	return s == morse.LetterGap || s == morse.WordGap
}

func groupForCursor(groups []groupRange, cursorIndex int) *groupRange {
	if len(groups) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, g := range groups {
		if cursorIndex >= g.start && cursorIndex < g.end {
			return &groups[i]
		}
	}
	return nil
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
