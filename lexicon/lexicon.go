// Package lexicon holds the word table and the closed word classes shared by
// the tagger, the frame extractor and the question classifier. A Lexicon is
// never modified after it is built, so one instance serves every caller.
package lexicon

import (
	"text2phenotype.com/reader/types"
	"strings"
)

type Entry struct {
	Category types.Tag `json:"category"`
	BaseForm string    `json:"baseForm"`
}

// ClosedSets is the YAML layout of the auxiliary word classes.
type ClosedSets struct {
	Names           []string          `yaml:"names"`
	DistanceUnits   []string          `yaml:"distance_units"`
	TimeMarkers     []string          `yaml:"time_markers"`
	TimeWords       []string          `yaml:"time_words"`
	ClauseMarkers   []string          `yaml:"clause_markers"`
	Determiners     []string          `yaml:"determiners"`
	NumeralArticles []string          `yaml:"numeral_articles"`
	WHWords         []string          `yaml:"wh_words"`
	WHModifiers     map[string]string `yaml:"wh_modifiers"`
	WHBase          map[string]string `yaml:"wh_base"`
	MovementVerbs   []string          `yaml:"movement_verbs"`
	Directions      []string          `yaml:"directions"`
	NumberWords     []string          `yaml:"number_words"`
}

type Lexicon struct {
	entries map[string]Entry

	names           map[string]bool
	distanceUnits   map[string]bool
	timeMarkers     map[string]bool
	timeWords       map[string]bool
	clauseMarkers   map[string]bool
	determiners     map[string]bool
	numeralArticles map[string]bool
	whWords         map[string]bool
	movementVerbs   map[string]bool
	directions      map[string]bool
	numberWords     map[string]bool

	whModifiers map[string]types.AnswerType
	whBase      map[string]types.AnswerType
}

func key(word string) string {
	return strings.ToLower(word)
}

// Lookup finds the entry of word ignoring case.
func (lex *Lexicon) Lookup(word string) (Entry, bool) {
	entry, ok := lex.entries[key(word)]
	return entry, ok
}

// Category is the stored category of word or "" when it is unknown.
func (lex *Lexicon) Category(word string) types.Tag {
	return lex.entries[key(word)].Category
}

func (lex *Lexicon) BaseForm(word string) (string, bool) {
	entry, ok := lex.Lookup(word)
	if !ok {
		return "", false
	}
	return entry.BaseForm, true
}

func (lex *Lexicon) Len() int {
	return len(lex.entries)
}

func (lex *Lexicon) IsName(word string) bool           { return lex.names[key(word)] }
func (lex *Lexicon) IsDistanceUnit(word string) bool   { return lex.distanceUnits[key(word)] }
func (lex *Lexicon) IsTimeMarker(word string) bool     { return lex.timeMarkers[key(word)] }
func (lex *Lexicon) IsTimeWord(word string) bool       { return lex.timeWords[key(word)] }
func (lex *Lexicon) IsClauseMarker(word string) bool   { return lex.clauseMarkers[key(word)] }
func (lex *Lexicon) IsDeterminer(word string) bool     { return lex.determiners[key(word)] }
func (lex *Lexicon) IsNumeralArticle(word string) bool { return lex.numeralArticles[key(word)] }
func (lex *Lexicon) IsWHWord(word string) bool         { return lex.whWords[key(word)] }
func (lex *Lexicon) IsMovementVerb(word string) bool   { return lex.movementVerbs[key(word)] }
func (lex *Lexicon) IsDirection(word string) bool      { return lex.directions[key(word)] }
func (lex *Lexicon) IsNumberWord(word string) bool     { return lex.numberWords[key(word)] }

// WHModifier maps the word right after a WH-word ("far" in "how far") to its
// answer type.
func (lex *Lexicon) WHModifier(word string) (types.AnswerType, bool) {
	at, ok := lex.whModifiers[key(word)]
	return at, ok
}

// WHBase maps a bare WH-word to its default answer type.
func (lex *Lexicon) WHBase(word string) (types.AnswerType, bool) {
	at, ok := lex.whBase[key(word)]
	return at, ok
}
