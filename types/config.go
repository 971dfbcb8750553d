package types

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"path"
	"strings"
)

const (
	// response features
	FrameFeature  = "frame"
	TagsFeature   = "tags"
	LemmasFeature = "lemmas"
)

var knownFeatures = map[string]bool{
	FrameFeature:  true,
	TagsFeature:   true,
	LemmasFeature: true,
}

// LexiconSource points to the word table and closed sets of a lexicon.
// An empty source selects the embedded default lexicon.
type LexiconSource struct {
	Dir      string `yaml:"dir" json:"dir"`
	JSONFile string `yaml:"json_file" json:"json_file"`
	S3Key    string `yaml:"s3_key" json:"s3_key"`
}

func (src LexiconSource) IsEmpty() bool {
	return src.Dir == "" && src.JSONFile == "" && src.S3Key == ""
}

type Configuration struct {
	Name     string        `yaml:"name" json:"name"`
	FilePath string        `yaml:"-" json:"file_path"`
	Lexicon  LexiconSource `yaml:"lexicon" json:"lexicon"`
	Features []string      `yaml:"features" json:"features"`
}

func (cfg Configuration) CheckFeature(featureName string) bool {
	for _, feat := range cfg.Features {
		if feat == featureName {
			return true
		}
	}

	return false
}

func DefaultConfiguration() Configuration {
	return Configuration{Name: "default"}
}

func LoadConfiguration(filePath string) (Configuration, error) {
	cfg := Configuration{
		Name:     strings.TrimSuffix(path.Base(filePath), path.Ext(filePath)),
		FilePath: filePath,
	}
	buf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse configuration %s: %w", filePath, err)
	}

	for _, feat := range cfg.Features {
		if !knownFeatures[feat] {
			return cfg, fmt.Errorf("unknown feature %q in %s", feat, filePath)
		}
	}
	return cfg, nil
}
