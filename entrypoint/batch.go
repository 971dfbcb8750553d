package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"github.com/gosuri/uiprogress"
	"io"
	"os"
	"text2phenotype.com/reader/pipeline"
	"strings"
)

type batchLine struct {
	Sentence  string   `json:"sentence"`
	Questions []string `json:"questions"`
}

func batchCommand(ppln pipeline.Pipeline, filePath string, ui UI) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	requests, err := readBatch(file)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	// the bar redraws in place, keep it off the JSON lines on Out
	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()
	bar := progress.AddBar(len(requests))
	bar.AppendCompleted()
	bar.PrependElapsed()
	defer progress.Stop()

	return answerBatch(ppln, requests, ui.Out, bar.Incr)
}

// readBatch parses JSON lines, one sentence with its questions per line.
// Blank lines are skipped.
func readBatch(r io.Reader) ([]pipeline.Request, error) {
	var requests []pipeline.Request
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var in batchLine
		if err := json.Unmarshal([]byte(line), &in); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if strings.TrimSpace(in.Sentence) == "" {
			return nil, fmt.Errorf("line %d: missing sentence", lineNo)
		}
		requests = append(requests, pipeline.Request{
			Tid:       fmt.Sprintf("batch_%s", uuid.NewString()),
			Sentence:  in.Sentence,
			Questions: in.Questions,
		})
	}
	return requests, scanner.Err()
}

// answerBatch sends every request through the pipeline at once and writes
// the responses in input order.
func answerBatch(ppln pipeline.Pipeline, requests []pipeline.Request, w io.Writer, done func() bool) error {
	results := make([]<-chan string, len(requests))
	for i, request := range requests {
		results[i] = ppln(request)
	}
	for i, resultChan := range results {
		result, ok := <-resultChan
		if !ok {
			return fmt.Errorf("pipeline returned nothing for %s", requests[i].Tid)
		}
		if _, err := fmt.Fprintln(w, result); err != nil {
			return err
		}
		if done != nil {
			done()
		}
	}
	return nil
}
