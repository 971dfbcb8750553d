package api

import (
	"net/http"
	"text2phenotype.com/reader/pipeline"
)

// NewHandler routes POST / to the question answering pipeline.
func NewHandler(ppln pipeline.Pipeline) http.Handler {
	apiRequest := &Request{
		Pipeline: ppln,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", apiRequest.ProcessData)
	return mux
}
