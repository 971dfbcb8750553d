package utils

import (
	"github.com/twmb/murmur3"
	"strings"
)

func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

// HashColumns hashes a whole BSV row, so rows that differ only by case collapse.
func HashColumns(columns []string) uint64 {
	return HashString(strings.Join(columns, "|"))
}

func AnyOf(s string, values ...string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}

func StringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}
