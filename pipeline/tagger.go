package pipeline

import (
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/pos"
	"text2phenotype.com/reader/types"
	"sync"
)

func NewPOSTagger(lex *lexicon.Lexicon) func(in <-chan types.Sentence) <-chan types.Sentence {
	tagger := pos.NewTagger(lex)

	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {

				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					if len(sent.Tokens) > 0 {
						tagged := tagger.TagTokens(types.Texts(sent.Tokens))
						for i, token := range tagged {
							sent.Tokens[i].Tag = token.Tag
						}
					}
					out <- sent
				}(sent)

			}

			wg.Wait()

		}()
		return out
	}
}
