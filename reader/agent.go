// Package reader answers WH-questions about a single declarative sentence.
//
// An Agent tags the sentence, extracts its frame, classifies the question and
// reads the answer off the frame. It holds no state besides the lexicon, so
// one Agent can serve any number of goroutines.
package reader

import (
	"github.com/rs/zerolog"
	"text2phenotype.com/reader/answer"
	"text2phenotype.com/reader/frame"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/logger"
	"text2phenotype.com/reader/pos"
	"text2phenotype.com/reader/question"
	"text2phenotype.com/reader/tokenizer"
	"text2phenotype.com/reader/types"
)

type Agent struct {
	lex        *lexicon.Lexicon
	tagger     *pos.Tagger
	classifier *question.Classifier
	logger     zerolog.Logger
}

func New(lex *lexicon.Lexicon) *Agent {
	return &Agent{
		lex:        lex,
		tagger:     pos.NewTagger(lex),
		classifier: question.NewClassifier(lex),
		logger:     logger.NewLogger("Reader"),
	}
}

func (agent *Agent) Lexicon() *lexicon.Lexicon {
	return agent.lex
}

// Solve answers question about sentence. An empty answer means the sentence
// does not say.
func (agent *Agent) Solve(sentence, q string) string {
	_, fr := agent.Analyze(sentence)
	at := agent.ClassifyQuestion(q)
	result := answer.Resolve(at, fr, q)

	agent.logger.Debug().
		Str("question", q).
		Stringer("answer_type", at).
		Str("answer", result).
		Msg("Question resolved")
	return result
}

// Analyze tags the sentence and extracts its frame.
func (agent *Agent) Analyze(sentence string) (types.Sentence, types.Frame) {
	tokens := agent.Tag(tokenizer.Tokenize(sentence))
	fr := agent.ExtractFrame(tokens)

	agent.logger.Debug().
		Str("sentence", sentence).
		Strs("tokens", types.Texts(tokens)).
		Strs("tags", tagNames(tokens)).
		Interface("frame", fr).
		Msg("Sentence analyzed")
	return types.Sentence{Text: sentence, Tokens: tokens}, fr
}

func (agent *Agent) Tag(words []string) []*types.Token {
	return agent.tagger.TagTokens(words)
}

func (agent *Agent) ExtractFrame(tokens []*types.Token) types.Frame {
	return frame.Extract(agent.lex, tokens)
}

func (agent *Agent) ClassifyQuestion(q string) types.AnswerType {
	return agent.classifier.Classify(q)
}

// Answer resolves q against a frame extracted earlier.
func (agent *Agent) Answer(fr types.Frame, q string) string {
	return answer.Resolve(agent.ClassifyQuestion(q), fr, q)
}

func tagNames(tokens []*types.Token) []string {
	names := make([]string, len(tokens))
	for i, token := range tokens {
		names[i] = string(token.Tag)
	}
	return names
}
