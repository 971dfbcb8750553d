// Package frame turns a tagged sentence into a shallow semantic frame: who
// did what to whom, where, when and with what.
package frame

import (
	"fmt"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/types"
	"strings"
)

// scanState is the pending context of one left-to-right scan. It lives only
// for the duration of a single Extract call.
type scanState struct {
	prep     string
	adj      string
	num      string
	prevWord string
}

// Extract fills a frame from tagged tokens. The first VERB (else the first
// AUX) becomes the action; the words before it are agents and the words after
// it get their role from the pending preposition.
func Extract(lex *lexicon.Lexicon, tokens []*types.Token) types.Frame {
	fr := types.NewFrame()

	actionIdx := predicateIndex(tokens)
	if actionIdx < 0 {
		return fr
	}
	fr.Action = tokens[actionIdx].Text

	scanSubject(lex, &fr, tokens[:actionIdx])
	scanPredicate(lex, &fr, tokens[actionIdx+1:])
	return fr
}

func predicateIndex(tokens []*types.Token) int {
	for _, tag := range []types.Tag{types.TagVERB, types.TagAUX} {
		for i, token := range tokens {
			if token.Is(tag) {
				return i
			}
		}
	}
	return -1
}

func scanSubject(lex *lexicon.Lexicon, fr *types.Frame, tokens []*types.Token) {
	var state scanState
	for _, token := range tokens {
		switch {
		case token.Is(types.TagADJ):
			state.adj = token.Text
		case token.Is(types.TagTIME):
			fr.Times = append(fr.Times, state.timePhrase(lex, token.Text))
		case token.Tag.IsNominal():
			fr.Agents = append(fr.Agents, token.Text)
			if state.adj != "" {
				fr.Modifiers[token.Text] = state.adj
				state.adj = ""
			}
		}
		state.prevWord = token.Text
	}
}

func scanPredicate(lex *lexicon.Lexicon, fr *types.Frame, tokens []*types.Token) {
	var state scanState
	for _, token := range tokens {
		word := token.Text
		if lex.IsClauseMarker(word) {
			break
		}

		switch {
		case token.Is(types.TagNUM):
			state.addNumeral(lex, word)
		case token.Is(types.TagADP):
			state.prep = strings.ToLower(word)
		case token.Is(types.TagADJ):
			state.adj = word
		case token.Is(types.TagDET):
			state.prevWord = word
			continue
		case token.Is(types.TagTIME):
			fr.Times = append(fr.Times, state.timePhrase(lex, word))
		case token.Tag.IsNominal():
			if lex.IsDirection(word) && state.prep == "" {
				fr.Locations = append(fr.Locations, word)
				state.prevWord = word
				continue
			}
			if state.num != "" && lex.IsDistanceUnit(word) {
				fr.Distances = append(fr.Distances, state.num+" "+word)
				state.num = ""
				state.prep = ""
				continue
			}
			if state.num != "" {
				fr.Quantities = append(fr.Quantities, state.num+" "+word)
			}
			assignRole(lex, fr, state.prep, token)
			if state.adj != "" {
				fr.Modifiers[word] = state.adj
				state.adj = ""
			}
			state.prep = ""
		}
		state.prevWord = word

		// predicate adjective: "The water is blue"
		if state.adj != "" && len(fr.Agents) > 0 {
			fr.Modifiers[fr.Agents[len(fr.Agents)-1]] = state.adj
		}
	}
}

func assignRole(lex *lexicon.Lexicon, fr *types.Frame, prep string, token *types.Token) {
	word := token.Text
	switch prep {
	case "":
		fr.Objects = append(fr.Objects, word)
	case "to":
		if token.Is(types.TagPROPN) {
			fr.Recipients = append(fr.Recipients, word)
		} else {
			fr.Locations = append(fr.Locations, word)
		}
	case "of":
		fr.Objects = append(fr.Objects, word)
	case "at", "in", "on", "from":
		if prep == "on" && lex.IsTimeWord(word) {
			fr.Times = append(fr.Times, word)
		} else {
			fr.Locations = append(fr.Locations, word)
		}
	case "with":
		if token.Is(types.TagPROPN) {
			fr.Companions = append(fr.Companions, word)
		} else {
			fr.Instruments = append(fr.Instruments, word)
		}
	}
}

// addNumeral extends the pending numeral: "a thousand", "one hundred".
func (state *scanState) addNumeral(lex *lexicon.Lexicon, word string) {
	switch {
	case state.prevWord != "" && lex.IsNumeralArticle(state.prevWord):
		state.num = fmt.Sprintf("%s %s", state.prevWord, word)
	case state.num != "":
		state.num = fmt.Sprintf("%s %s", state.num, word)
	default:
		state.num = word
	}
}

// timePhrase keeps a preceding time marker with the time word ("every day").
func (state *scanState) timePhrase(lex *lexicon.Lexicon, word string) string {
	if state.prevWord != "" && lex.IsTimeMarker(state.prevWord) {
		return state.prevWord + " " + word
	}
	return word
}
