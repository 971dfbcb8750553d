package pipeline

import (
	"text2phenotype.com/reader/answer"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/question"
	"text2phenotype.com/reader/types"
)

type Result struct {
	Index  int
	Answer types.Answer
}

// NewAnswerer answers one question against every analysed sentence and keeps
// the first non-empty answer.
func NewAnswerer(lex *lexicon.Lexicon) func(in <-chan Analysis, index int, q string) <-chan Result {
	classifier := question.NewClassifier(lex)

	return func(in <-chan Analysis, index int, q string) <-chan Result {
		out := make(chan Result)

		go func() {
			defer close(out)
			result := Result{
				Index: index,
				Answer: types.Answer{
					Question:   q,
					AnswerType: classifier.Classify(q),
				},
			}
			for analysis := range in {
				if result.Answer.Text != "" {
					continue
				}
				result.Answer.Text = answer.Resolve(result.Answer.AnswerType, analysis.Frame, q)
			}
			out <- result
		}()

		return out
	}
}
