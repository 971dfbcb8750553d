package pos

// Context is a word together with its immediate neighbours. An empty
// neighbour means the word is at the sentence edge.
type Context struct {
	Word string
	Prev string
	Next string
}

func (ctx Context) HasPrev() bool {
	return ctx.Prev != ""
}

func (ctx Context) HasNext() bool {
	return ctx.Next != ""
}

func NewContext(words []string, index int) Context {
	ctx := Context{Word: words[index]}
	if index > 0 {
		ctx.Prev = words[index-1]
	}
	if len(words) > index+1 {
		ctx.Next = words[index+1]
	}
	return ctx
}
