package lemmatizer

import (
	"bytes"
	_ "embed"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
)

//go:embed data/rules.yaml
var defaultRules []byte

type MorphologicalRules struct {
	NounRule [][]string `yaml:"noun"`
	VerbRule [][]string `yaml:"verb"`
	AdjRule  [][]string `yaml:"adj"`
}

func DefaultRules() (*MorphologicalRules, error) {
	return ReadRules(bytes.NewReader(defaultRules))
}

func ReadRules(r io.Reader) (*MorphologicalRules, error) {
	var rules MorphologicalRules
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("failed to decode morphological rules: %w", err)
	}
	for _, set := range [][][]string{rules.NounRule, rules.VerbRule, rules.AdjRule} {
		for _, rule := range set {
			if len(rule) != 2 || rule[0] == "" {
				return nil, fmt.Errorf("malformed morphological rule %q", rule)
			}
		}
	}
	return &rules, nil
}

func getBaseAux(form string, rules [][]string, isBase func(string) bool) (string, bool) {
	for _, rule := range rules {
		if strings.HasSuffix(form, rule[0]) && len(form) > len(rule[0]) {
			base := form[:len(form)-len(rule[0])] + rule[1]
			if isBase(base) {
				return base, true
			}
		}
	}

	return "", false
}
