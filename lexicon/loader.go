package lexicon

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"io/ioutil"
	"os"
	"path"
	"text2phenotype.com/reader/logger"
	"text2phenotype.com/reader/types"
	"text2phenotype.com/reader/utils"
	"strings"
	"sync"
)

const (
	WordsFile     = "words.bsv"
	WordsJSONFile = "words.json"
	SetsFile      = "sets.yaml"
)

//go:embed data/words.bsv data/sets.yaml
var embedded embed.FS

var (
	defaultLexicon     *Lexicon
	defaultLexiconErr  error
	defaultInitializer sync.Once
)

// Default returns the lexicon compiled into the binary. It is parsed once.
func Default() (*Lexicon, error) {
	defaultInitializer.Do(func() {
		words, err := embedded.Open(path.Join("data", WordsFile))
		if err != nil {
			defaultLexiconErr = err
			return
		}
		defaultLexicon, defaultLexiconErr = Parse(words, nil)
	})
	return defaultLexicon, defaultLexiconErr
}

// MustDefault is Default for callers that cannot run without a lexicon.
func MustDefault() *Lexicon {
	lex, err := Default()
	if err != nil {
		panic(err)
	}
	return lex
}

func defaultSets() (ClosedSets, error) {
	buf, err := embedded.ReadFile(path.Join("data", SetsFile))
	if err != nil {
		return ClosedSets{}, err
	}
	return decodeSets(bytes.NewReader(buf))
}

func decodeSets(r io.Reader) (ClosedSets, error) {
	var sets ClosedSets
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil {
		return sets, fmt.Errorf("failed to decode closed sets: %w", err)
	}
	return sets, nil
}

func readSets(sets io.Reader) (ClosedSets, error) {
	if sets == nil {
		return defaultSets()
	}
	return decodeSets(sets)
}

// Parse builds a lexicon from a bar separated word table (word|CATEGORY|base)
// and the YAML closed sets. A nil sets reader selects the built-in sets.
func Parse(words io.Reader, sets io.Reader) (*Lexicon, error) {
	closedSets, err := readSets(sets)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]Entry)
	rows, readErrs := utils.NewBSVReader(WordsFile, words, utils.HashColumns)

	var parseErr error
	for columns := range rows {
		if parseErr != nil {
			continue
		}
		var word string
		var entry Entry
		word, entry, parseErr = parseRow(columns)
		if parseErr == nil {
			addEntry(entries, word, entry)
		}
	}
	if err := <-readErrs; err != nil {
		return nil, fmt.Errorf("failed to read word table: %w", err)
	}
	if parseErr != nil {
		return nil, parseErr
	}

	return build(entries, closedSets)
}

func parseRow(columns []string) (string, Entry, error) {
	if len(columns) < 2 || len(columns) > 3 {
		return "", Entry{}, fmt.Errorf("word table row %q should have 2 or 3 columns", strings.Join(columns, "|"))
	}
	word := strings.TrimSpace(columns[0])
	if word == "" {
		return "", Entry{}, errors.New("word table row has an empty word")
	}
	category, err := types.ParseTag(columns[1])
	if err != nil {
		return "", Entry{}, fmt.Errorf("word %q: %w", word, err)
	}
	baseForm := word
	if len(columns) == 3 && strings.TrimSpace(columns[2]) != "" {
		baseForm = strings.TrimSpace(columns[2])
	}
	return word, Entry{Category: category, BaseForm: baseForm}, nil
}

// ParseJSON builds a lexicon from the mapping produced by the lexicon
// builder: {"word": {"category": "NOUN", "baseForm": "word"}, ...}.
func ParseJSON(words io.Reader, sets io.Reader) (*Lexicon, error) {
	closedSets, err := readSets(sets)
	if err != nil {
		return nil, err
	}
	var raw map[string]Entry
	if err := json.NewDecoder(words).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode word table: %w", err)
	}

	entries := make(map[string]Entry, len(raw))
	for word, entry := range raw {
		category, err := types.ParseTag(string(entry.Category))
		if err != nil {
			return nil, fmt.Errorf("word %q: %w", word, err)
		}
		entry.Category = category
		if entry.BaseForm == "" {
			entry.BaseForm = strings.ToLower(word)
		}
		addEntry(entries, word, entry)
	}

	return build(entries, closedSets)
}

// LoadDir reads sets.yaml and either words.bsv or words.json from dir.
func LoadDir(dir string) (*Lexicon, error) {
	loaderLogger := logger.NewLogger("Lexicon loader")

	sets, err := os.Open(path.Join(dir, SetsFile))
	if err != nil {
		return nil, err
	}
	defer sets.Close()

	var lex *Lexicon
	if words, err := os.Open(path.Join(dir, WordsFile)); err == nil {
		defer words.Close()
		lex, err = Parse(words, sets)
		if err != nil {
			return nil, err
		}
	} else if os.IsNotExist(err) {
		lex, err = LoadJSONFile(path.Join(dir, WordsJSONFile), sets)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, err
	}

	loaderLogger.Info().
		Str("dir", dir).
		Int("entries", lex.Len()).
		Msg("Loaded lexicon")
	return lex, nil
}

func LoadJSONFile(filePath string, sets io.Reader) (*Lexicon, error) {
	buf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ParseJSON(bytes.NewReader(buf), sets)
}

// addEntry keys the table by lower case; an entry spelled in lower case wins
// over a capitalised spelling of the same word.
func addEntry(entries map[string]Entry, word string, entry Entry) {
	k := key(word)
	if _, exists := entries[k]; exists && word != k {
		return
	}
	entries[k] = entry
}

func build(entries map[string]Entry, sets ClosedSets) (*Lexicon, error) {
	whModifiers, err := answerTypes(sets.WHModifiers)
	if err != nil {
		return nil, fmt.Errorf("wh_modifiers: %w", err)
	}
	whBase, err := answerTypes(sets.WHBase)
	if err != nil {
		return nil, fmt.Errorf("wh_base: %w", err)
	}

	lex := &Lexicon{
		entries:         entries,
		names:           utils.StringSet(sets.Names),
		distanceUnits:   utils.StringSet(sets.DistanceUnits),
		timeMarkers:     utils.StringSet(sets.TimeMarkers),
		timeWords:       utils.StringSet(sets.TimeWords),
		clauseMarkers:   utils.StringSet(sets.ClauseMarkers),
		determiners:     utils.StringSet(sets.Determiners),
		numeralArticles: utils.StringSet(sets.NumeralArticles),
		whWords:         utils.StringSet(sets.WHWords),
		movementVerbs:   utils.StringSet(sets.MovementVerbs),
		directions:      utils.StringSet(sets.Directions),
		numberWords:     utils.StringSet(sets.NumberWords),
		whModifiers:     whModifiers,
		whBase:          whBase,
	}

	// names are always proper nouns, even when the word table misses them
	for name := range lex.names {
		if _, ok := entries[name]; !ok {
			entries[name] = Entry{Category: types.TagPROPN, BaseForm: name}
		}
	}
	return lex, nil
}

func answerTypes(codes map[string]string) (map[string]types.AnswerType, error) {
	result := make(map[string]types.AnswerType, len(codes))
	for word, code := range codes {
		at, err := types.ParseAnswerType(code)
		if err != nil {
			return nil, err
		}
		if at.IsUnknown() {
			return nil, fmt.Errorf("word %q maps to %s", word, at)
		}
		result[key(word)] = at
	}
	return result, nil
}
