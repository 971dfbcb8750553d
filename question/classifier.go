// Package question maps a WH-question onto the frame slot that answers it.
package question

import (
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/tokenizer"
	"text2phenotype.com/reader/types"
	"text2phenotype.com/reader/utils"
)

type Classifier struct {
	lex *lexicon.Lexicon
}

func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Tokens is the case-folded token list the classifier works on.
func (c *Classifier) Tokens(question string) []string {
	return tokenizer.TokenizeLower(question)
}

// Classify finds the first WH-word of the question and refines it with the
// words around it. Questions without a WH-word are Unknown.
func (c *Classifier) Classify(question string) types.AnswerType {
	tokens := c.Tokens(question)

	whIdx := -1
	for i, token := range tokens {
		if c.lex.IsWHWord(token) {
			whIdx = i
			break
		}
	}
	if whIdx < 0 {
		return types.Unknown
	}

	wh := tokens[whIdx]
	var prev, next string
	if whIdx > 0 {
		prev = tokens[whIdx-1]
	}
	if whIdx+1 < len(tokens) {
		next = tokens[whIdx+1]
	}
	isWho := utils.AnyOf(wh, "who", "whom")

	switch prev {
	case "with":
		if isWho {
			return types.WhoWith
		}
		return types.WithWhat
	case "to":
		return types.WhoRecipient
	}

	if at, ok := c.lex.WHModifier(next); ok && next != "" {
		return at
	}
	if isWho && utils.AnyOf("with", tokens[whIdx+1:]...) {
		return types.WhoWith
	}
	if isWho && tokens[len(tokens)-1] == "to" {
		return types.WhoRecipient
	}
	if wh == "what" && utils.AnyOf("is", tokens...) {
		return types.WhatSubject
	}
	if wh == "how" && c.mentionsMovement(tokens) {
		return types.HowMethod
	}

	if at, ok := c.lex.WHBase(wh); ok {
		return at
	}
	return types.Unknown
}

func (c *Classifier) mentionsMovement(tokens []string) bool {
	for _, token := range tokens {
		if c.lex.IsMovementVerb(token) {
			return true
		}
	}
	return false
}
