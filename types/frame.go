package types

// Frame is the shallow semantic structure of one declarative sentence.
// Role slots keep left-to-right scan order; duplicates are allowed.
type Frame struct {
	Action      string            `json:"action"`
	Agents      []string          `json:"agents"`
	Objects     []string          `json:"objects"`
	Recipients  []string          `json:"recipients"`
	Locations   []string          `json:"locations"`
	Times       []string          `json:"times"`
	Instruments []string          `json:"instruments"`
	Companions  []string          `json:"companions"`
	Distances   []string          `json:"distances"`
	Quantities  []string          `json:"quantities"`
	Modifiers   map[string]string `json:"modifiers"`
}

func NewFrame() Frame {
	return Frame{
		Agents:      []string{},
		Objects:     []string{},
		Recipients:  []string{},
		Locations:   []string{},
		Times:       []string{},
		Instruments: []string{},
		Companions:  []string{},
		Distances:   []string{},
		Quantities:  []string{},
		Modifiers:   map[string]string{},
	}
}

func (frame Frame) HasAction() bool {
	return frame.Action != ""
}

func (frame Frame) IsEmpty() bool {
	return !frame.HasAction() &&
		len(frame.Agents) == 0 &&
		len(frame.Objects) == 0 &&
		len(frame.Recipients) == 0 &&
		len(frame.Locations) == 0 &&
		len(frame.Times) == 0 &&
		len(frame.Instruments) == 0 &&
		len(frame.Companions) == 0 &&
		len(frame.Distances) == 0 &&
		len(frame.Quantities) == 0 &&
		len(frame.Modifiers) == 0
}

func First(values []string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func Last(values []string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}
