package pipeline

import (
	"text2phenotype.com/reader/frame"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/types"
	"sync"
)

// Analysis is a tagged sentence together with its frame.
type Analysis struct {
	Sentence types.Sentence
	Frame    types.Frame
}

func NewFrameExtractor(lex *lexicon.Lexicon) func(in <-chan types.Sentence) <-chan Analysis {
	return func(in <-chan types.Sentence) <-chan Analysis {
		out := make(chan Analysis)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					out <- Analysis{
						Sentence: sent,
						Frame:    frame.Extract(lex, sent.Tokens),
					}
				}(sent)
			}

			wg.Wait()
		}()

		return out
	}
}
