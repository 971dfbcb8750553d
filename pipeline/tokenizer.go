package pipeline

import (
	"text2phenotype.com/reader/tokenizer"
	"text2phenotype.com/reader/types"
	"sync"
)

type Tokenizer func(in <-chan types.Sentence) <-chan types.Sentence

func NewTokenizer() (Tokenizer, error) {
	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					words := tokenizer.Tokenize(sent.Text)
					sent.Tokens = make([]*types.Token, len(words))
					for i, word := range words {
						sent.Tokens[i] = &types.Token{Text: word}
					}
					out <- sent
				}(sent)
			}

			wg.Wait()
		}()

		return out
	}, nil
}
