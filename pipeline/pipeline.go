package pipeline

import (
	"encoding/json"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/logger"
	"text2phenotype.com/reader/types"
)

// Pipeline answers a request asynchronously; the channel yields one JSON
// encoded types.Response, or closes empty when the response could not be
// built.
type Pipeline func(request Request) <-chan string

var marshalResponse = func(response types.Response) ([]byte, error) {
	return json.Marshal(response)
}

type QuestionAnsweringParams struct {
	Configuration types.Configuration `json:"configuration"`
	// nil selects the built-in lexicon
	Lexicon *lexicon.Lexicon `json:"-"`
}

func GetQuestionAnsweringParams(cfg types.Configuration, lex *lexicon.Lexicon) QuestionAnsweringParams {
	return QuestionAnsweringParams{
		Configuration: cfg,
		Lexicon:       lex,
	}
}

func QuestionAnswering(params QuestionAnsweringParams) (Pipeline, error) {
	readerLogger := logger.NewLogger("Question answering pipeline")
	errLogger := readerLogger.With().Caller().Logger()
	readerLogger.Info().
		Interface("params", params).
		Msg("Starting question answering pipeline (see parameters in 'params' field)")

	lex := params.Lexicon
	if lex == nil {
		var err error
		if lex, err = lexicon.Default(); err != nil {
			errLogger.Err(err).Msg("Failed to load built-in lexicon")
			return nil, err
		}
	}

	tokenizer, err := NewTokenizer()
	if err != nil {
		errLogger.Err(err).Msg("Failed to create tokenizer")
		return nil, err
	}
	tagger := NewPOSTagger(lex)
	lemmatizer, err := NewLemmatizer(lex)
	if err != nil {
		errLogger.Err(err).Msg("Failed to create lemmatizer")
		return nil, err
	}
	extractor := NewFrameExtractor(lex)
	answerer := NewAnswerer(lex)
	response := NewQuestionAnsweringResult(params.Configuration)

	return func(request Request) <-chan string {
		responseChan := make(chan string, 1)
		pplnLog := readerLogger.With().Str("tid", request.Tid).Logger()
		pplnLog.Info().
			Int("questions", len(request.Questions)).
			Msg("Started question answering pipeline")
		errLogger := pplnLog.With().Caller().Logger()

		go func() {
			defer close(responseChan)
			var in = make(chan types.Sentence)

			tok := tokenizer(in)
			tag := tagger(tok)
			lem := lemmatizer(tag)
			frames := extractor(lem)

			split := NewAnalysisSplitter(len(request.Questions) + 1)(frames)

			resultChannel := make(chan Result)
			for i, question := range request.Questions {
				connect(answerer(split[i], i, question), resultChannel)
			}
			analyses := collectAnalyses(split[len(request.Questions)])

			in <- types.Sentence{Text: request.Sentence}
			close(in)

			answers := make([]types.Answer, len(request.Questions))
			for i := 0; i < len(request.Questions); i++ {
				res := <-resultChannel
				answers[res.Index] = res.Answer
			}

			buf, err := marshalResponse(response(request, <-analyses, answers))
			if err != nil {
				// callers treat a channel closed without a value as a failed request
				errLogger.Err(err).Msg("Failed to marshall response")
				return
			}
			pplnLog.Info().Msg("Finished question answering pipeline")
			responseChan <- string(buf)
		}()

		return responseChan
	}, nil
}

func connect(from <-chan Result, to chan<- Result) {
	go func() {
		for v := range from {
			to <- v
		}
	}()
}

// collectAnalyses drains in and yields everything it carried once it closes.
func collectAnalyses(in <-chan Analysis) <-chan []Analysis {
	out := make(chan []Analysis, 1)
	go func() {
		defer close(out)
		var all []Analysis
		for analysis := range in {
			all = append(all, analysis)
		}
		out <- all
	}()
	return out
}
