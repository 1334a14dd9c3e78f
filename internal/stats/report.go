// Package stats contains run statistics and text reporting.
package stats

import (
	"github.com/verte-zerg/morsetrace/internal/model"
	"github.com/verte-zerg/morsetrace/internal/morse"
)

// Report summarizes the events of one decode run.
type Report struct {
	Steps       int
	Pushes      int
	Letters     int
	Unknown     int
	WordBreaks  int
	Invalid     []rune
	MaxDepth    int
	Depths      []float64
	LetterAggs  []model.LetterAggregate
	Output      string
	InputLength int
}

// BuildReport aggregates the events produced by stepping an automaton.
func BuildReport(events []morse.Event) Report {
	var r Report
	index := map[string]int{}
	for _, ev := range events {
		r.Steps++
		switch ev.Action {
		case morse.ActionPush:
			r.Pushes++
		case morse.ActionWordBreak:
			r.WordBreaks++
		case morse.ActionInvalid:
			r.Invalid = append(r.Invalid, ev.Char)
		case morse.ActionEnd:
			r.InputLength = ev.Pos
		}
		if ev.HasResolved {
			r.Letters++
			if ev.Resolved == morse.Unknown {
				r.Unknown++
			}
			ch := string(ev.Resolved)
			i, ok := index[ch]
			if !ok {
				code := ev.Key
				if ev.Resolved == morse.Unknown {
					code = ""
				}
				i = len(r.LetterAggs)
				index[ch] = i
				r.LetterAggs = append(r.LetterAggs, model.LetterAggregate{Char: ch, Code: code})
			}
			r.LetterAggs[i].Count++
		}
		depth := len(ev.Accumulator)
		if depth > r.MaxDepth {
			r.MaxDepth = depth
		}
		r.Depths = append(r.Depths, float64(depth))
		r.Output = ev.Output
	}
	return r
}
