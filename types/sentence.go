package types

type Sentence struct {
	Text   string
	Tokens []*Token
}
