package morse

import (
	"fmt"
	"strings"
)

// State is the observable label of the automaton. It never gates transitions.
type State int

const (
	StateStart State = iota
	StateReading
	StateResolved
	StateLetterBreak
	StateWordBreak
	StateError
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "START"
	case StateReading:
		return "READING"
	case StateResolved:
		return "RESOLVED"
	case StateLetterBreak:
		return "SPACE"
	case StateWordBreak:
		return "WORD_BREAK"
	case StateError:
		return "ERROR"
	case StateEnd:
		return "END"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Action tags the transition taken by a step.
type Action int

const (
	ActionPush Action = iota
	ActionLetterBreak
	ActionWordBreak
	ActionInvalid
	ActionEnd
)

func (a Action) String() string {
	switch a {
	case ActionPush:
		return "Push"
	case ActionLetterBreak:
		return "LetterBreak"
	case ActionWordBreak:
		return "WordBreak"
	case ActionInvalid:
		return "Invalid"
	case ActionEnd:
		return "End"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Event describes a single step. Accumulator, Output and State are the
// values after the step; Path lists every state entered during it.
type Event struct {
	Action Action
	Symbol Symbol
	// Char is the consumed input character. It is zero for End events.
	Char rune
	// Pos is the rune index of Char, or the input length for End events.
	Pos int

	// Key and Resolved are set when the step resolved the accumulator.
	Key         string
	Resolved    rune
	HasResolved bool
	// WordSpace reports that a word separator was appended to the output.
	WordSpace bool

	Accumulator string
	Output      string
	State       State
	Path        []State
}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Action: %s", e.Action)
	switch e.Action {
	case ActionEnd:
		b.WriteString(" | End of sequence")
	case ActionInvalid:
		fmt.Fprintf(&b, " | Symbol: %q ignored", e.Char)
	default:
		fmt.Fprintf(&b, " | Symbol: %s", e.Symbol)
	}
	if e.HasResolved {
		fmt.Fprintf(&b, " | Decoded: %c from %s", e.Resolved, e.Key)
	}
	if e.WordSpace {
		b.WriteString(" | Word space")
	}
	fmt.Fprintf(&b, " | Stack: [%s] | State: %s", e.Accumulator, e.State)
	return b.String()
}
