package types

import (
	"fmt"
	"strings"
)

type WHCategory string

const (
	WHWho   WHCategory = "WHO"
	WHWhat  WHCategory = "WHAT"
	WHWhen  WHCategory = "WHEN"
	WHWhere WHCategory = "WHERE"
	WHWhy   WHCategory = "WHY"
	WHHow   WHCategory = "HOW"
	// WHWith only prefixes WITH_WHAT ("with what did ...").
	WHWith  WHCategory = "WITH"
)

type Detail string

const (
	DetailNone      Detail = ""
	DetailAgent     Detail = "AGENT"
	DetailObject    Detail = "OBJECT"
	DetailRecipient Detail = "RECIPIENT"
	DetailWith      Detail = "WITH"
	DetailSubject   Detail = "SUBJECT"
	DetailColor     Detail = "COLOR"
	DetailModifier  Detail = "MODIFIER"
	DetailMethod    Detail = "METHOD"
	DetailFar       Detail = "FAR"
	DetailLong      Detail = "LONG"
	DetailOld       Detail = "OLD"
	DetailQuantity  Detail = "QUANTITY"
	DetailFrequency Detail = "FREQUENCY"
	DetailWhat      Detail = "WHAT"
)

const unknownCode = "UNKNOWN"

var whCategories = map[WHCategory]bool{
	WHWho: true, WHWhat: true, WHWhen: true, WHWhere: true, WHWhy: true, WHHow: true, WHWith: true,
}

var details = map[Detail]bool{
	DetailAgent: true, DetailObject: true, DetailRecipient: true, DetailWith: true,
	DetailSubject: true, DetailColor: true, DetailModifier: true, DetailMethod: true,
	DetailFar: true, DetailLong: true, DetailOld: true, DetailQuantity: true,
	DetailFrequency: true, DetailWhat: true,
}

// AnswerType is the classification of a question: a primary WH category and
// an optional discriminator. The zero value is Unknown.
type AnswerType struct {
	WH     WHCategory
	Detail Detail
}

var Unknown = AnswerType{}

var (
	WhoAgent     = AnswerType{WHWho, DetailAgent}
	WhoRecipient = AnswerType{WHWho, DetailRecipient}
	WhoWith      = AnswerType{WHWho, DetailWith}
	WhatObject   = AnswerType{WHWhat, DetailObject}
	WhatSubject  = AnswerType{WHWhat, DetailSubject}
	WhatColor    = AnswerType{WHWhat, DetailColor}
	WhatModifier = AnswerType{WHWhat, DetailModifier}
	WithWhat     = AnswerType{WHWith, DetailWhat}
	When         = AnswerType{WH: WHWhen}
	Where        = AnswerType{WH: WHWhere}
	Why          = AnswerType{WH: WHWhy}
	How          = AnswerType{WH: WHHow}
	HowMethod    = AnswerType{WHHow, DetailMethod}
	HowFar       = AnswerType{WHHow, DetailFar}
	HowLong      = AnswerType{WHHow, DetailLong}
	HowOld       = AnswerType{WHHow, DetailOld}
	HowQuantity  = AnswerType{WHHow, DetailQuantity}
	HowFrequency = AnswerType{WHHow, DetailFrequency}
)

func (at AnswerType) IsUnknown() bool {
	return at.WH == ""
}

func (at AnswerType) String() string {
	switch {
	case at.IsUnknown():
		return unknownCode
	case at.Detail == DetailNone:
		return string(at.WH)
	default:
		return string(at.WH) + "_" + string(at.Detail)
	}
}

func (at AnswerType) MarshalText() ([]byte, error) {
	return []byte(at.String()), nil
}

func (at *AnswerType) UnmarshalText(text []byte) error {
	parsed, err := ParseAnswerType(string(text))
	if err != nil {
		return err
	}
	*at = parsed
	return nil
}

// ParseAnswerType parses codes such as "WHO_AGENT", "WHERE" or "UNKNOWN".
func ParseAnswerType(code string) (AnswerType, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == unknownCode {
		return Unknown, nil
	}
	parts := strings.SplitN(code, "_", 2)
	at := AnswerType{WH: WHCategory(parts[0])}
	if !whCategories[at.WH] {
		return Unknown, fmt.Errorf("unknown answer type %q", code)
	}
	if len(parts) == 2 {
		at.Detail = Detail(parts[1])
		if !details[at.Detail] {
			return Unknown, fmt.Errorf("unknown answer type detail in %q", code)
		}
	}
	return at, nil
}
