package morse

import "sort"

// Unknown is produced for keys that are not in the code table.
const Unknown = '?'

// MaxKeyLen is the longest key present in the code table.
const MaxKeyLen = 5

// Entry is one code table mapping.
type Entry struct {
	Key  string
	Char rune
}

var codeTable = map[string]rune{
	".-": 'A', "-...": 'B', "-.-.": 'C', "-..": 'D', ".": 'E', "..-.": 'F', "--.": 'G',
	"....": 'H', "..": 'I', ".---": 'J', "-.-": 'K', ".-..": 'L', "--": 'M', "-.": 'N',
	"---": 'O', ".--.": 'P', "--.-": 'Q', ".-.": 'R', "...": 'S', "-": 'T', "..-": 'U',
	"...-": 'V', ".--": 'W', "-..-": 'X', "-.--": 'Y', "--..": 'Z',
	"-----": '0', ".----": '1', "..---": '2', "...--": '3', "....-": '4',
	".....": '5', "-....": '6', "--...": '7', "---..": '8', "----.": '9',
}

var sortedEntries = buildEntries()

func buildEntries() []Entry {
	entries := make([]Entry, 0, len(codeTable))
	for key, ch := range codeTable {
		entries = append(entries, Entry{Key: key, Char: ch})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Key) == len(entries[j].Key) {
			return entries[i].Key < entries[j].Key
		}
		return len(entries[i].Key) < len(entries[j].Key)
	})
	return entries
}

// Lookup returns the character mapped to key.
func Lookup(key string) (rune, bool) {
	ch, ok := codeTable[key]
	return ch, ok
}

// Resolve returns the character mapped to key, or Unknown.
func Resolve(key string) rune {
	if ch, ok := codeTable[key]; ok {
		return ch
	}
	return Unknown
}

// Entries returns a copy of the table ordered by key length, then key.
func Entries() []Entry {
	out := make([]Entry, len(sortedEntries))
	copy(out, sortedEntries)
	return out
}
