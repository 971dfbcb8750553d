package s3client

import (
	"fmt"
	"path"
	"strings"
)

// ResultsKey is where the response for one queued question task is stored.
func ResultsKey(jobID, redisKey string) string {
	return path.Join("processed", "questions", jobID, fmt.Sprintf("%s.reader_results.json", redisKey))
}

// LexiconKey is the conventional key of a named word table export.
func LexiconKey(name string) string {
	return path.Join("lexicons", fmt.Sprintf("%s.json", strings.TrimSuffix(name, ".json")))
}

// Keys maps the reader's object keys into the bucket.
type Keys struct {
	Prefix string
}

// Object returns the full key of an object. Keys are cleaned and never
// start with a slash. A key that already carries the prefix is kept as is.
func (keys Keys) Object(key string) (string, error) {
	key = strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(key)), "/")
	if key == "" || key == "." {
		return "", ErrEmptyKey
	}
	prefix := strings.Trim(keys.Prefix, "/")
	if prefix == "" || key == prefix || strings.HasPrefix(key, prefix+"/") {
		return key, nil
	}
	return prefix + "/" + key, nil
}
