package types

type Token struct {
	Text  string `json:"text"`
	Tag   Tag    `json:"tag,omitempty"`
	Lemma string `json:"lemma,omitempty"`
}

func (token *Token) Is(tag Tag) bool {
	return token.Tag == tag
}

func (token Token) Clone() Token {
	return Token{
		Text:  token.Text,
		Tag:   token.Tag,
		Lemma: token.Lemma,
	}
}

// Texts returns the surface forms of the tokens in order.
func Texts(tokens []*Token) []string {
	texts := make([]string, len(tokens))
	for i, token := range tokens {
		texts[i] = token.Text
	}
	return texts
}
