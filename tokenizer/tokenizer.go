package tokenizer

import "strings"

const sentenceTerminators = ".?!"

// Tokenize drops trailing sentence punctuation and splits on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(strings.TrimRight(text, sentenceTerminators))
}

// TokenizeLower is Tokenize over the case-folded text.
func TokenizeLower(text string) []string {
	return Tokenize(strings.ToLower(text))
}
