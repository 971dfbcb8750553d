package types

type Answer struct {
	Question   string     `json:"question"`
	AnswerType AnswerType `json:"answer_type"`
	Text       string     `json:"answer"`
}

// Response is the JSON document produced for one request. Frame and Tokens
// are present only when the reader profile enables them.
type Response struct {
	Tid      string   `json:"tid"`
	Sentence string   `json:"sentence"`
	Answers  []Answer `json:"answers"`
	Frame    *Frame   `json:"frame,omitempty"`
	Tokens   []*Token `json:"tokens,omitempty"`
}
