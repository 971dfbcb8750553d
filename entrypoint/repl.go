package main

import (
	"fmt"
	"github.com/c-bata/go-prompt"
	"text2phenotype.com/reader/reader"
	"text2phenotype.com/reader/tokenizer"
	"strings"
)

const (
	sentenceCommand = ":sentence"
	frameCommand    = ":frame"
	quitCommand     = "quit"
)

var questionWords = []prompt.Suggest{
	{Text: "Who", Description: "agent or companion"},
	{Text: "What", Description: "object, subject or attribute"},
	{Text: "When", Description: "time"},
	{Text: "Where", Description: "location"},
	{Text: "Why", Description: "reason"},
	{Text: "How", Description: "manner, distance or frequency"},
	{Text: sentenceCommand, Description: "read a new sentence"},
	{Text: frameCommand, Description: "show what was read"},
	{Text: quitCommand, Description: "leave"},
}

// session keeps the sentence the questions are asked about.
type session struct {
	agent    *reader.Agent
	ui       UI
	sentence string
}

func newSession(agent *reader.Agent, ui UI) *session {
	return &session{agent: agent, ui: ui}
}

func (s *session) Run() {
	fmt.Fprintln(s.ui.Out, "Type a sentence, then ask about it. "+sentenceCommand+" <text> reads another one, quit leaves.")
	history := []string{}
	for {
		in := prompt.Input(s.prefix(), s.completer,
			prompt.OptionTitle("reader"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(8),
			prompt.OptionHistory(history),
		)
		if strings.TrimSpace(in) == quitCommand {
			return
		}
		history = append(history, in)
		if out := s.handle(in); out != "" {
			fmt.Fprintln(s.ui.Out, out)
		}
	}
}

func (s *session) prefix() string {
	if s.sentence == "" {
		return "sentence> "
	}
	return "question> "
}

// handle reads a sentence when there is none yet and answers otherwise.
func (s *session) handle(line string) string {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return ""
	case strings.HasPrefix(line, sentenceCommand):
		s.sentence = strings.TrimSpace(strings.TrimPrefix(line, sentenceCommand))
		return ""
	case line == frameCommand:
		if s.sentence == "" {
			return "no sentence yet"
		}
		sentence, frame := s.agent.Analyze(s.sentence)
		tagged := make([]string, len(sentence.Tokens))
		for i, token := range sentence.Tokens {
			tagged[i] = fmt.Sprintf("%s/%s", token.Text, token.Tag)
		}
		return fmt.Sprintf("%s\n%+v", strings.Join(tagged, " "), frame)
	case s.sentence == "":
		s.sentence = line
		return ""
	}
	answer := s.agent.Solve(s.sentence, line)
	if answer == "" {
		return fmt.Sprintf("(%s) I don't know", s.agent.ClassifyQuestion(line))
	}
	return answer
}

// completer offers question words at the start of a question and words of
// the current sentence after that.
func (s *session) completer(in prompt.Document) []prompt.Suggest {
	word := in.GetWordBeforeCursor()
	if word == "" {
		return nil
	}
	if strings.TrimSpace(in.TextBeforeCursor()) == word {
		return prompt.FilterHasPrefix(questionWords, word, true)
	}
	seen := map[string]bool{}
	var suggests []prompt.Suggest
	for _, w := range tokenizer.Tokenize(s.sentence) {
		if seen[w] {
			continue
		}
		seen[w] = true
		suggests = append(suggests, prompt.Suggest{Text: w})
	}
	return prompt.FilterHasPrefix(suggests, word, true)
}
