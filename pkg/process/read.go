package process

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadDocument reads the whole file as UTF-8 text.
// Content that is not valid UTF-8 is an error, not a degraded read.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: content is not valid UTF-8", path)
	}

	return string(data), nil
}
