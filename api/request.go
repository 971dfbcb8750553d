package api

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"text2phenotype.com/reader/pipeline"
	"text2phenotype.com/reader/utils"
	"strings"
)

type Request struct {
	Pipeline pipeline.Pipeline
}

type questionsBody struct {
	Sentence  string   `json:"sentence"`
	Questions []string `json:"questions"`
}

func (req *Request) ProcessData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logger := makeRequestLogger(r)

	if r.Method != "POST" {
		logger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}

	msg, err := ioutil.ReadAll(r.Body)
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	var body questionsBody
	if err := json.Unmarshal(msg, &body); err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Request body is not a valid JSON document")
		http.Error(w, "", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Sentence) == "" {
		logger.Err(nil).Int("status", http.StatusBadRequest).Msg("Request has no sentence")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	request := pipeline.Request{
		Tid:       fmt.Sprintf("api_%x", utils.HashString(string(msg))),
		Sentence:  body.Sentence,
		Questions: body.Questions,
	}
	logger.Info().Str("tid", request.Tid).Msg("Starting pipeline for request from API")
	resp, ok := <-req.Pipeline(request)
	if !ok {
		logger.Error().Str("tid", request.Tid).Int("status", http.StatusInternalServerError).Msg("Pipeline returned no response")
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(resp))
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}
