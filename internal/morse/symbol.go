// Package morse implements a step-by-step Morse code decoding automaton.
package morse

// Symbol is the class of one input character.
type Symbol int

// The zero Symbol is reported by events that consumed no input.
const (
	Dot Symbol = iota + 1
	Dash
	LetterGap
	WordGap
	Invalid
)

// Classify maps an input character to its symbol.
func Classify(r rune) Symbol {
	switch r {
	case '.':
		return Dot
	case '-':
		return Dash
	case ' ':
		return LetterGap
	case '/':
		return WordGap
	default:
		return Invalid
	}
}

// Mark returns the key character for Dot and Dash, or 0 for any other symbol.
func (s Symbol) Mark() rune {
	switch s {
	case Dot:
		return '.'
	case Dash:
		return '-'
	default:
		return 0
	}
}

func (s Symbol) String() string {
	switch s {
	case Dot:
		return "DOT"
	case Dash:
		return "DASH"
	case LetterGap:
		return "LETTER_GAP"
	case WordGap:
		return "WORD_GAP"
	case Invalid:
		return "INVALID"
	default:
		return "NONE"
	}
}
