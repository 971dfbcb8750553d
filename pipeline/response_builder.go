package pipeline

import (
	"text2phenotype.com/reader/types"
)

func NewQuestionAnsweringResult(cfg types.Configuration) func(request Request, analyses []Analysis, answers []types.Answer) types.Response {
	withFrame := cfg.CheckFeature(types.FrameFeature)
	withTags := cfg.CheckFeature(types.TagsFeature)
	withLemmas := cfg.CheckFeature(types.LemmasFeature)

	return func(request Request, analyses []Analysis, answers []types.Answer) types.Response {
		response := types.Response{
			Tid:      request.Tid,
			Sentence: request.Sentence,
			Answers:  answers,
		}
		if response.Answers == nil {
			response.Answers = []types.Answer{}
		}
		if len(analyses) == 0 {
			return response
		}

		analysis := analyses[0]
		if withFrame {
			fr := analysis.Frame
			response.Frame = &fr
		}
		if withTags || withLemmas {
			response.Tokens = make([]*types.Token, len(analysis.Sentence.Tokens))
			for i, token := range analysis.Sentence.Tokens {
				clone := token.Clone()
				if !withTags {
					clone.Tag = ""
				}
				if !withLemmas {
					clone.Lemma = ""
				}
				response.Tokens[i] = &clone
			}
		}
		return response
	}
}
