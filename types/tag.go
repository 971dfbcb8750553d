package types

import (
	"fmt"
	"strings"
)

// Tag is a syntactic category from the closed tag set.
type Tag string

const (
	TagPROPN Tag = "PROPN"
	TagNOUN  Tag = "NOUN"
	TagVERB  Tag = "VERB"
	TagAUX   Tag = "AUX"
	TagADJ   Tag = "ADJ"
	TagADV   Tag = "ADV"
	TagADP   Tag = "ADP"
	TagPART  Tag = "PART"
	TagPRON  Tag = "PRON"
	TagDET   Tag = "DET"
	TagNUM   Tag = "NUM"
	TagCCONJ Tag = "CCONJ"
	TagSCONJ Tag = "SCONJ"
	TagINTJ  Tag = "INTJ"
	TagTIME  Tag = "TIME"
)

var tagSet = map[Tag]bool{
	TagPROPN: true, TagNOUN: true, TagVERB: true, TagAUX: true, TagADJ: true,
	TagADV: true, TagADP: true, TagPART: true, TagPRON: true, TagDET: true,
	TagNUM: true, TagCCONJ: true, TagSCONJ: true, TagINTJ: true, TagTIME: true,
}

func ParseTag(s string) (Tag, error) {
	tag := Tag(strings.ToUpper(strings.TrimSpace(s)))
	if !tagSet[tag] {
		return "", fmt.Errorf("unknown tag %q", s)
	}
	return tag, nil
}

// IsNominal reports whether the tag can fill a thematic role slot.
func (tag Tag) IsNominal() bool {
	return tag == TagNOUN || tag == TagPROPN
}
