package lexicon

import (
	"bytes"
	"errors"
	"fmt"
	"text2phenotype.com/reader/types"
)

// Fetcher downloads an object from the shared storage.
type Fetcher interface {
	Download(key string) ([]byte, error)
}

var ErrNoFetcher = errors.New("lexicon source points to storage but no fetcher is configured")

// Load resolves a lexicon source from the reader profile. Dir wins over
// JSONFile, which wins over S3Key. An empty source gives the default lexicon.
func Load(src types.LexiconSource, fetcher Fetcher) (*Lexicon, error) {
	switch {
	case src.Dir != "":
		return LoadDir(src.Dir)
	case src.JSONFile != "":
		return LoadJSONFile(src.JSONFile, nil)
	case src.S3Key != "":
		if fetcher == nil {
			return nil, ErrNoFetcher
		}
		buf, err := fetcher.Download(src.S3Key)
		if err != nil {
			return nil, fmt.Errorf("failed to download lexicon %s: %w", src.S3Key, err)
		}
		return ParseJSON(bytes.NewReader(buf), nil)
	default:
		return Default()
	}
}
