// Package pos assigns one syntactic category to every token using the
// lexicon, the neighbouring words and a few morphological fallbacks.
package pos

import (
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/types"
)

type Tagger struct {
	lex   *lexicon.Lexicon
	rules []Rule
}

func NewTagger(lex *lexicon.Lexicon) *Tagger {
	return NewTaggerWithRules(lex, DefaultRules())
}

// NewTaggerWithRules builds a tagger over a custom cascade. When no rule
// applies the word is tagged NOUN.
func NewTaggerWithRules(lex *lexicon.Lexicon, rules []Rule) *Tagger {
	return &Tagger{lex: lex, rules: rules}
}

// Tag tags word given its neighbours; pass "" for a missing neighbour.
func (tagger *Tagger) Tag(word, prev, next string) types.Tag {
	return tagger.TagContext(Context{Word: word, Prev: prev, Next: next})
}

func (tagger *Tagger) TagContext(ctx Context) types.Tag {
	if ctx.Word == "" {
		return types.TagNOUN
	}
	for _, rule := range tagger.rules {
		if tag, ok := rule.Apply(tagger.lex, ctx); ok {
			return tag
		}
	}
	return types.TagNOUN
}

// TagTokens tags each word independently with its left and right neighbours
// as context.
func (tagger *Tagger) TagTokens(words []string) []*types.Token {
	tokens := make([]*types.Token, len(words))
	for i, word := range words {
		tokens[i] = &types.Token{
			Text: word,
			Tag:  tagger.TagContext(NewContext(words, i)),
		}
	}
	return tokens
}
