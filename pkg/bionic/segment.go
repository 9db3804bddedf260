package bionic

import (
	"regexp"
	"unicode/utf8"
)

// wordSeparator matches whitespace runs, including Unicode space separators.
var wordSeparator = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// Word is a whitespace delimited word and its character offset.
type Word struct {
	Text  string
	Start int
	Len   int
}

// End returns the offset just past the word.
func (w Word) End() int {
	return w.Start + w.Len
}

// SplitWords splits text on whitespace runs. Offsets count characters, and
// every separator advances the cursor by exactly one character whatever its
// real length, so offsets after a tab, newline or double space trail the
// real positions. Callers rely on this; do not change it without changing
// every consumer of the offsets.
func SplitWords(text string) []Word {
	var words []Word
	cursor := 0
	for _, part := range wordSeparator.Split(text, -1) {
		n := utf8.RuneCountInString(part)
		if n == 0 {
			cursor++
			continue
		}
		words = append(words, Word{Text: part, Start: cursor, Len: n})
		cursor += n + 1
	}
	return words
}

// BoldCount returns how many leading characters of a word of the given
// length are bolded: fixation percent of the length, rounded up, at least one.
func BoldCount(length, fixationStrength int) int {
	return max(1, (length*fixationStrength+99)/100)
}
