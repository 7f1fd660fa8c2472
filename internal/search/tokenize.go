// Package search holds the keyword tokenizer shared by the journal search
// endpoints.
package search

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// Tokenize splits raw search text into lower-cased words, dropping stop words
// and empty tokens. Punctuation and whitespace act as delimiters.
func Tokenize(text string) []string {
	words := wordPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		token := strings.ToLower(word)
		if token == "" || IsStopWord(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
