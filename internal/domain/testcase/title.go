package testcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SentenceCase trims and collapses whitespace, upper-cases the first letter
// and lower-cases the rest. Words written entirely in capitals (two letters or
// more) are kept as acronyms unless the whole title is capitals.
func SentenceCase(value string) string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return ""
	}

	lower := cases.Lower(language.Und)
	keepAcronyms := !allUpper(words)
	for i, word := range words {
		if keepAcronyms && isAcronym(word) {
			continue
		}
		words[i] = lower.String(word)
	}

	sentence := strings.Join(words, " ")
	first, size := utf8.DecodeRuneInString(sentence)
	return cases.Upper(language.Und).String(string(first)) + sentence[size:]
}

func isAcronym(word string) bool {
	letters := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}

func allUpper(words []string) bool {
	for _, word := range words {
		for _, r := range word {
			if unicode.IsLetter(r) && !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}
