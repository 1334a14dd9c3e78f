package morse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/morsetrace/internal/morse"
)

func TestEntriesCoverAlphabet(t *testing.T) {
	seen := map[rune]string{}
	keys := map[string]bool{}
	for _, e := range morse.Entries() {
		assert.NotContains(t, keys, e.Key, "duplicate key")
		keys[e.Key] = true
		seen[e.Char] = e.Key
		assert.GreaterOrEqual(t, len(e.Key), 1)
		assert.LessOrEqual(t, len(e.Key), morse.MaxKeyLen)
	}
	for r := 'A'; r <= 'Z'; r++ {
		assert.Contains(t, seen, r)
	}
	for r := '0'; r <= '9'; r++ {
		assert.Contains(t, seen, r)
	}
}

func TestEntriesOrderedAndCopied(t *testing.T) {
	entries := morse.Entries()
	assert.Equal(t, morse.Entry{Key: "-", Char: 'T'}, entries[0])
	assert.Equal(t, morse.Entry{Key: ".", Char: 'E'}, entries[1])

	entries[0].Char = 'Z'
	assert.Equal(t, 'T', morse.Entries()[0].Char)
}

func TestResolveSentinel(t *testing.T) {
	assert.Equal(t, 'S', morse.Resolve("..."))
	assert.Equal(t, morse.Unknown, morse.Resolve(".-.-"))
	assert.Equal(t, morse.Unknown, morse.Resolve(""))

	_, ok := morse.Lookup("......")
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, morse.Dot, morse.Classify('.'))
	assert.Equal(t, morse.Dash, morse.Classify('-'))
	assert.Equal(t, morse.LetterGap, morse.Classify(' '))
	assert.Equal(t, morse.WordGap, morse.Classify('/'))
	assert.Equal(t, morse.Invalid, morse.Classify('\t'))
	assert.Equal(t, "WORD_GAP", morse.WordGap.String())
	assert.Equal(t, rune(0), morse.Invalid.Mark())
}
