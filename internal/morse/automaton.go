package morse

import "slices"

// Automaton decodes Morse input one character at a time. The zero value
// behaves like an automaton reset with empty input. It is not safe for
// concurrent use.
type Automaton struct {
	input []rune
	pos   int
	acc   []byte
	out   []rune
	state State

	last    Event
	hasLast bool
}

// New returns an automaton with empty input.
func New() *Automaton {
	return &Automaton{}
}

// Decode decodes input with a fresh automaton.
func Decode(input string) string {
	a := New()
	a.Reset(input)
	return a.DecodeAll()
}

// Reset stores input and clears all decoding state.
func (a *Automaton) Reset(input string) {
	a.input = []rune(input)
	a.pos = 0
	a.acc = a.acc[:0]
	a.out = nil
	a.state = StateStart
	a.last = Event{}
	a.hasLast = false
}

// Step consumes one input character and reports the transition. Once the
// input is exhausted it flushes any pending letter and settles in StateEnd;
// further calls return End events without changing anything.
func (a *Automaton) Step() Event {
	if a.pos >= len(a.input) {
		ev := Event{Action: ActionEnd, Pos: len(a.input)}
		a.flush(&ev)
		a.state = StateEnd
		return a.finish(ev)
	}

	r := a.input[a.pos]
	ev := Event{Symbol: Classify(r), Char: r, Pos: a.pos}
	a.pos++

	switch ev.Symbol {
	case Dot, Dash:
		a.acc = append(a.acc, byte(ev.Symbol.Mark()))
		a.state = StateReading
		ev.Action = ActionPush
	case LetterGap:
		a.flush(&ev)
		a.state = StateLetterBreak
		ev.Action = ActionLetterBreak
	case WordGap:
		a.flush(&ev)
		a.out = append(a.out, ' ')
		a.state = StateWordBreak
		ev.Action = ActionWordBreak
		ev.WordSpace = true
	default:
		a.state = StateError
		ev.Action = ActionInvalid
	}
	return a.finish(ev)
}

// DecodeAll steps until StateEnd and returns the decoded output.
func (a *Automaton) DecodeAll() string {
	for a.state != StateEnd {
		a.Step()
	}
	return a.Output()
}

// flush resolves a non-empty accumulator into the output.
func (a *Automaton) flush(ev *Event) {
	if len(a.acc) == 0 {
		return
	}
	key := string(a.acc)
	a.acc = a.acc[:0]
	ch := Resolve(key)
	a.out = append(a.out, ch)

	ev.Key = key
	ev.Resolved = ch
	ev.HasResolved = true
	ev.Path = append(ev.Path, StateResolved)
}

func (a *Automaton) finish(ev Event) Event {
	ev.State = a.state
	ev.Path = append(ev.Path, a.state)
	ev.Accumulator = string(a.acc)
	ev.Output = string(a.out)
	a.last = ev
	a.last.Path = slices.Clone(ev.Path)
	a.hasLast = true
	return ev
}

// State returns the current state label.
func (a *Automaton) State() State { return a.state }

// Output returns the decoded text so far.
func (a *Automaton) Output() string { return string(a.out) }

// Accumulator returns the pending dot/dash key.
func (a *Automaton) Accumulator() string { return string(a.acc) }

// Input returns the input set by the last Reset.
func (a *Automaton) Input() string { return string(a.input) }

// Pos returns the rune index of the next character to consume.
func (a *Automaton) Pos() int { return a.pos }

// Len returns the input length in runes.
func (a *Automaton) Len() int { return len(a.input) }

// Done reports whether the automaton has reached StateEnd.
func (a *Automaton) Done() bool { return a.state == StateEnd }

// Last returns the most recent event since Reset.
func (a *Automaton) Last() (Event, bool) {
	ev := a.last
	ev.Path = slices.Clone(a.last.Path)
	return ev, a.hasLast
}
