// Package answer picks the frame slot that answers a classified question.
package answer

import (
	"text2phenotype.com/reader/pos"
	"text2phenotype.com/reader/tokenizer"
	"text2phenotype.com/reader/types"
	"strings"
)

// Resolve returns the answer to question from fr, or "" when the frame holds
// nothing of the requested type.
func Resolve(at types.AnswerType, fr types.Frame, question string) string {
	switch at.WH {
	case types.WHWho:
		return resolveWho(at, fr, question)
	case types.WHWhat:
		return resolveWhat(at, fr, question)
	case types.WHWhen:
		return resolveWhen(fr)
	case types.WHWhere:
		return last(fr.Locations)
	case types.WHHow:
		return resolveHow(at, fr, question)
	}
	// WHY and WITH_WHAT have no slot in the frame
	return ""
}

func resolveWho(at types.AnswerType, fr types.Frame, question string) string {
	if at.Detail == types.DetailNone {
		return ""
	}
	switch at.Detail {
	case types.DetailAgent:
		if agent, ok := types.Last(fr.Agents); ok {
			return agent
		}
	case types.DetailRecipient:
		if recipient, ok := types.Last(fr.Recipients); ok {
			return recipient
		}
	case types.DetailWith:
		// the participant the question does not already name
		lowered := strings.ToLower(question)
		for _, agent := range fr.Agents {
			if !strings.Contains(lowered, strings.ToLower(agent)) {
				return agent
			}
		}
		if agent, ok := types.First(fr.Agents); ok {
			return agent
		}
	}

	// existential sentences ("There are three men") keep their subject in objects
	if object, ok := types.First(fr.Objects); ok {
		return object
	}
	return first(fr.Agents)
}

func resolveWhat(at types.AnswerType, fr types.Frame, question string) string {
	switch at.Detail {
	case types.DetailObject:
		if object, ok := types.Last(fr.Objects); ok {
			return object
		}
		return last(fr.Agents)
	case types.DetailSubject:
		return last(fr.Agents)
	case types.DetailColor, types.DetailModifier:
		return modifierOf(fr, question)
	}
	return ""
}

func resolveWhen(fr types.Frame) string {
	for _, t := range fr.Times {
		if pos.ClockTime.MatchString(t) {
			return t
		}
	}
	return last(fr.Times)
}

func resolveHow(at types.AnswerType, fr types.Frame, question string) string {
	switch at.Detail {
	case types.DetailMethod:
		return fr.Action
	case types.DetailFar:
		return last(fr.Distances)
	case types.DetailLong, types.DetailOld:
		return modifierOf(fr, question)
	case types.DetailQuantity:
		return first(fr.Quantities)
	}
	return ""
}

// modifierOf finds the first question word that the frame records an
// adjective for. Words are matched as written in the question.
func modifierOf(fr types.Frame, question string) string {
	for _, token := range tokenizer.Tokenize(question) {
		if modifier, ok := fr.Modifiers[token]; ok {
			return modifier
		}
	}
	return ""
}

func first(values []string) string {
	value, _ := types.First(values)
	return value
}

func last(values []string) string {
	value, _ := types.Last(values)
	return value
}
