package pos

import (
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/types"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ClockTime matches "8:00", "8:00AM", "11:30pm". Only the prefix is anchored.
var ClockTime = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}(AM|PM)?`)

// Rule proposes a tag for a word in context. The second result is false when
// the rule does not apply.
type Rule struct {
	Name  string
	Apply func(lex *lexicon.Lexicon, ctx Context) (types.Tag, bool)
}

var (
	nounSuffixes = []string{"tion", "ness", "ment", "ity", "er", "or"}
	advSuffixes  = []string{"ly"}
	verbSuffixes = []string{"ed", "ing"}
)

const minInflectedVerbLength = 5

// DefaultRules is the tagging cascade; earlier rules suppress later ones.
func DefaultRules() []Rule {
	return []Rule{
		{"name", nameRule},
		{"to", toRule},
		{"time", timeRule},
		{"determiner", determinerRule},
		{"hyphenated number", hyphenatedNumberRule},
		{"lexicon", lexiconRule},
		{"morphology", morphologyRule},
		{"capitalized", capitalizedRule},
		{"default", defaultRule},
	}
}

func nameRule(lex *lexicon.Lexicon, ctx Context) (types.Tag, bool) {
	return types.TagPROPN, lex.IsName(ctx.Word)
}

// "to" before a verb is the infinitive marker, otherwise a preposition.
func toRule(lex *lexicon.Lexicon, ctx Context) (types.Tag, bool) {
	if strings.ToLower(ctx.Word) != "to" {
		return "", false
	}
	if ctx.HasNext() && lex.Category(ctx.Next) == types.TagVERB {
		return types.TagPART, true
	}
	return types.TagADP, true
}

func timeRule(lex *lexicon.Lexicon, ctx Context) (types.Tag, bool) {
	return types.TagTIME, ClockTime.MatchString(ctx.Word) || lex.IsTimeWord(ctx.Word)
}

// After a determiner a verb reads as a noun ("a play"); other known words
// keep their category ("the best").
func determinerRule(lex *lexicon.Lexicon, ctx Context) (types.Tag, bool) {
	if !ctx.HasPrev() || !lex.IsDeterminer(ctx.Prev) {
		return "", false
	}
	entry, ok := lex.Lookup(ctx.Word)
	if !ok || entry.Category == types.TagVERB {
		return types.TagNOUN, true
	}
	return entry.Category, true
}

func hyphenatedNumberRule(lex *lexicon.Lexicon, ctx Context) (types.Tag, bool) {
	parts := strings.Split(ctx.Word, "-")
	if len(parts) != 2 {
		return "", false
	}
	return types.TagNUM, lex.IsNumberWord(parts[0]) && lex.IsNumberWord(parts[1])
}

func lexiconRule(lex *lexicon.Lexicon, ctx Context) (types.Tag, bool) {
	entry, ok := lex.Lookup(ctx.Word)
	return entry.Category, ok
}

func morphologyRule(_ *lexicon.Lexicon, ctx Context) (types.Tag, bool) {
	word := strings.ToLower(ctx.Word)
	switch {
	case hasAnySuffix(word, nounSuffixes):
		return types.TagNOUN, true
	case hasAnySuffix(word, advSuffixes):
		return types.TagADV, true
	case hasAnySuffix(word, verbSuffixes) && utf8.RuneCountInString(word) >= minInflectedVerbLength:
		return types.TagVERB, true
	}
	return "", false
}

// unknown capitalised words are taken for proper nouns wherever they occur
func capitalizedRule(_ *lexicon.Lexicon, ctx Context) (types.Tag, bool) {
	r, _ := utf8.DecodeRuneInString(ctx.Word)
	return types.TagPROPN, r != utf8.RuneError && unicode.IsUpper(r)
}

func defaultRule(_ *lexicon.Lexicon, _ Context) (types.Tag, bool) {
	return types.TagNOUN, true
}

func hasAnySuffix(word string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
