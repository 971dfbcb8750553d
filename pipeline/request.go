package pipeline

type Request struct {
	Tid       string   `json:"tid"`
	Sentence  string   `json:"sentence"`
	Questions []string `json:"questions"`
}
