package lemmatizer

import (
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/types"
	"strings"
)

// MorphologicalAnalyzer returns the lemma of a tagged word.
type MorphologicalAnalyzer func(form string, tag types.Tag) string

// NewMorphologicalAnalyzer prefers the lexicon base form. Inflected forms
// missing from the lexicon are reduced by suffix rules, and a reduction only
// counts when the lexicon knows the result with the same category.
func NewMorphologicalAnalyzer(rules *MorphologicalRules, lex *lexicon.Lexicon) MorphologicalAnalyzer {
	knownAs := func(tag types.Tag) func(string) bool {
		return func(base string) bool {
			entry, ok := lex.Lookup(base)
			return ok && entry.Category == tag
		}
	}

	return func(form string, tag types.Tag) string {
		if baseForm, ok := lex.BaseForm(form); ok {
			return baseForm
		}
		form = strings.ToLower(form)

		var set [][]string
		switch tag {
		case types.TagNOUN:
			set = rules.NounRule
		case types.TagVERB:
			set = rules.VerbRule
		case types.TagADJ:
			set = rules.AdjRule
		default:
			return form
		}
		if base, ok := getBaseAux(form, set, knownAs(tag)); ok {
			return base
		}
		return form
	}
}
