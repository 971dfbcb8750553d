package utils

import (
	"bufio"
	"fmt"
	"io"
	"text2phenotype.com/reader/logger"
	"strings"
)

type GetHashFunc func(columns []string) uint64

// NewBSVReader streams the lower-cased columns of a bar separated file.
// Comment lines ("#", "//") and blank lines are skipped, duplicate rows are
// dropped. src is closed when it is an io.Closer.
// The error channel yields the read error, if any, once rows is closed.
func NewBSVReader(name string, src io.Reader, getHash GetHashFunc) (<-chan []string, <-chan error) {
	readerLogger := logger.NewLogger("BSVReader (" + name + ")")

	out := make(chan []string)
	errs := make(chan error, 1)

	go func() {
		if closer, ok := src.(io.Closer); ok {
			defer closer.Close()
		}
		defer close(errs)
		defer close(out)

		r := bufio.NewReader(src)

		// to remove duplicates
		var hashes = make(map[uint64]bool)

		for {
			line, err := r.ReadString('\n')
			if len(line) == 0 {
				if err == io.EOF {
					break
				} else if err != nil {
					readerLogger.Error().Err(err).Msg("Failed to read line")
					errs <- fmt.Errorf("%s: %w", name, err)
					return
				}
			}

			if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
				continue
			}
			line = strings.ToLower(strings.TrimRight(line, "\r\n"))
			if len(strings.TrimSpace(line)) == 0 {
				continue
			}
			columns := strings.Split(line, "|")

			hash := getHash(columns)

			_, ok := hashes[hash]
			if !ok {
				hashes[hash] = true

				out <- columns
			}
		}
	}()

	return out, errs
}
