package pipeline

import (
	"text2phenotype.com/reader/lemmatizer"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/types"
	"sync"
)

// NewLemmatizer fills token lemmas from the lexicon base forms, reducing
// unknown inflected words with the built-in morphological rules.
func NewLemmatizer(lex *lexicon.Lexicon) (func(in <-chan types.Sentence) <-chan types.Sentence, error) {
	rules, err := lemmatizer.DefaultRules()
	if err != nil {
		return nil, err
	}
	analyzer := lemmatizer.NewMorphologicalAnalyzer(rules, lex)

	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)

				go func(sent types.Sentence) {
					defer wg.Done()
					for _, token := range sent.Tokens {
						token.Lemma = analyzer(token.Text, token.Tag)
					}

					out <- sent
				}(sent)

			}
			wg.Wait()
		}()
		return out
	}, nil
}
