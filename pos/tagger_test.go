package pos

import (
	"github.com/stretchr/testify/require"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/tokenizer"
	"text2phenotype.com/reader/types"
	"testing"
)

func TestTag(t *testing.T) {
	tagger := NewTagger(lexicon.MustDefault())

	cases := []struct {
		name     string
		word     string
		prev     string
		next     string
		expected types.Tag
	}{
		{"known name", "Irene", "to", "", types.TagPROPN},
		{"name in lower case", "lucy", "and", "walk", types.TagPROPN},
		{"infinitive to", "to", "mile", "go", types.TagPART},
		{"preposition to", "to", "go", "school", types.TagADP},
		{"to before a name", "to", "note", "Irene", types.TagADP},
		{"to before unknown word", "to", "go", "Zanzibar", types.TagADP},
		{"sentence final to", "to", "note", "", types.TagADP},
		{"clock time", "8:00AM", "at", "when", types.TagTIME},
		{"clock time lower case", "11:30pm", "at", "", types.TagTIME},
		{"clock time without suffix", "7:15", "", "", types.TagTIME},
		{"time word", "soon", "snow", "", types.TagTIME},
		{"time word capitalized", "Monday", "on", "", types.TagTIME},
		{"time word after determiner", "day", "the", "", types.TagTIME},
		{"verb after determiner", "walk", "a", "", types.TagNOUN},
		{"adjective after determiner", "short", "a", "note", types.TagADJ},
		{"unknown after determiner", "zorp", "the", "", types.TagNOUN},
		{"hyphenated number", "twenty-one", "", "", types.TagNUM},
		{"hyphenated number capitalized", "Thirty-Two", "", "", types.TagNUM},
		{"hyphenated non number", "twenty-mile", "", "", types.TagNOUN},
		{"lexicon verb", "brought", "Ada", "a", types.TagVERB},
		{"lexicon aux", "is", "water", "blue", types.TagAUX},
		{"noun suffix", "creation", "", "", types.TagNOUN},
		{"agent suffix", "painter", "", "", types.TagNOUN},
		{"adverb suffix", "happily", "", "", types.TagADV},
		{"past tense suffix", "jumped", "", "", types.TagVERB},
		{"short -ed word", "fled", "", "", types.TagNOUN},
		{"gerund beats capital", "Walking", "", "", types.TagVERB},
		{"capitalized unknown", "Zanzibar", "to", "", types.TagPROPN},
		{"default", "zorp", "", "", types.TagNOUN},
		{"empty word", "", "", "", types.TagNOUN},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, tagger.Tag(c.word, c.prev, c.next))
		})
	}
}

func TestTagTokens(t *testing.T) {
	tagger := NewTagger(lexicon.MustDefault())

	tokens := tagger.TagTokens(tokenizer.Tokenize("Ada brought a short note to Irene."))
	require.Equal(t, []types.Tag{
		types.TagPROPN, types.TagVERB, types.TagPRON, types.TagADJ, types.TagNOUN, types.TagADP, types.TagPROPN,
	}, tags(tokens))
	require.Equal(t, []string{"Ada", "brought", "a", "short", "note", "to", "Irene"}, types.Texts(tokens))

	tokens = tagger.TagTokens(tokenizer.Tokenize("David and Lucy walk one mile to go to school every day at 8:00AM when there is no snow."))
	require.Equal(t, []types.Tag{
		types.TagPROPN, types.TagCCONJ, types.TagPROPN, types.TagVERB, types.TagNUM, types.TagNOUN,
		types.TagPART, types.TagVERB, types.TagADP, types.TagNOUN, types.TagDET, types.TagTIME,
		types.TagADP, types.TagTIME, types.TagSCONJ, types.TagPRON, types.TagAUX, types.TagINTJ, types.TagNOUN,
	}, tags(tokens))

	single := tagger.TagTokens([]string{"Run"})
	require.Len(t, single, 1)
	require.Empty(t, tagger.TagTokens(nil))
}

func TestTagIsStableAcrossPositions(t *testing.T) {
	tagger := NewTagger(lexicon.MustDefault())

	short := tagger.TagTokens([]string{"a", "walk", "to"})
	long := tagger.TagTokens([]string{"Ada", "took", "a", "walk", "to", "school"})

	require.Equal(t, short[1].Tag, long[3].Tag)
	require.Equal(t, tagger.Tag("walk", "a", "to"), long[3].Tag)
}

func TestCustomRules(t *testing.T) {
	lex := lexicon.MustDefault()

	require.Equal(t, types.TagNOUN, NewTaggerWithRules(lex, nil).Tag("brought", "", ""))

	rules := append([]Rule{{
		Name: "always verb",
		Apply: func(_ *lexicon.Lexicon, _ Context) (types.Tag, bool) {
			return types.TagVERB, true
		},
	}}, DefaultRules()...)
	require.Equal(t, types.TagVERB, NewTaggerWithRules(lex, rules).Tag("Irene", "", ""))
}

func TestNewContext(t *testing.T) {
	words := []string{"It", "will", "snow"}
	require.Equal(t, Context{Word: "It", Next: "will"}, NewContext(words, 0))
	require.Equal(t, Context{Word: "will", Prev: "It", Next: "snow"}, NewContext(words, 1))
	require.Equal(t, Context{Word: "snow", Prev: "will"}, NewContext(words, 2))
}

func tags(tokens []*types.Token) []types.Tag {
	result := make([]types.Tag, len(tokens))
	for i, token := range tokens {
		result[i] = token.Tag
	}
	return result
}
