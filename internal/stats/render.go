package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/morsetrace/internal/morse"
)

const (
	sparkChars      = " .:-=+*#%@"
	topLettersCount = 3
)

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints the run counters and the accumulator depth curve.
// Sparklines longer than width are cut to the last width steps; width <= 0
// disables the cut.
func RenderSummary(w io.Writer, r Report, width int) error {
	if r.Steps == 0 {
		_, err := fmt.Fprintln(w, "No steps recorded.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Decoded: %q", r.Output),
		fmt.Sprintf("Steps: %d (input %d)", r.Steps, r.InputLength),
		fmt.Sprintf("Symbols pushed: %d", r.Pushes),
		fmt.Sprintf("Letters resolved: %d", r.Letters),
		fmt.Sprintf("Unknown codes: %d", r.Unknown),
		fmt.Sprintf("Word breaks: %d", r.WordBreaks),
		fmt.Sprintf("Invalid symbols: %d%s", len(r.Invalid), invalidList(r.Invalid)),
		fmt.Sprintf("Max stack depth: %d", r.MaxDepth),
	}
	if top := TopLetters(r.LetterAggs, topLettersCount); len(top) > 0 {
		lines = append(lines, "Top letters: "+strings.Join(top, ", "))
	}
	depths := r.Depths
	if width > 0 && len(depths) > width {
		depths = depths[len(depths)-width:]
	}
	lines = append(lines, "Stack depth: "+Sparkline(depths), "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func invalidList(runes []rune) string {
	if len(runes) == 0 {
		return ""
	}
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = fmt.Sprintf("%q", r)
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// RenderLetterTable prints per-character decode counts, most frequent first.
func RenderLetterTable(w io.Writer, r Report) error {
	if len(r.LetterAggs) == 0 {
		_, err := fmt.Fprintln(w, "No letters decoded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Letters"); err != nil {
		return err
	}
	headers := []string{"Char", "Code", "Count", "Share"}
	rows := make([][]string, 0, len(r.LetterAggs))
	for _, agg := range sortedByCount(r.LetterAggs) {
		code := agg.Code
		if code == "" {
			code = "<unknown>"
		}
		rows = append(rows, []string{
			agg.Char,
			code,
			fmt.Sprintf("%d", agg.Count),
			fmt.Sprintf("%.1f%%", float64(agg.Count)/float64(r.Letters)*100),
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{2: true, 3: true}))
}

// RenderTrace prints one row per step.
func RenderTrace(w io.Writer, events []morse.Event) error {
	headers := []string{"Step", "Pos", "Char", "Action", "Stack", "State", "Decoded"}
	rows := make([][]string, 0, len(events))
	for i, ev := range events {
		char := ""
		switch {
		case ev.Action == morse.ActionEnd:
			char = "<end>"
		case ev.Char == ' ':
			char = "<space>"
		default:
			char = string(ev.Char)
		}
		resolved := ""
		if ev.HasResolved {
			resolved = fmt.Sprintf("%c <- %s", ev.Resolved, ev.Key)
		}
		if ev.WordSpace {
			resolved = strings.TrimSpace(resolved + " +space")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", ev.Pos),
			char,
			ev.Action.String(),
			ev.Accumulator,
			ev.State.String(),
			resolved,
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 1: true}))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
