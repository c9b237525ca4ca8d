package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/takaryo1010/giongo/internal/onomatopoeia"
)

// LoadDictionary loads a compiled dictionary file and validates it.
// The format follows the file extension.
func LoadDictionary(path string) (*onomatopoeia.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	dict, err := onomatopoeia.Decode(bytes.NewReader(data), onomatopoeia.FormatForPath(path))
	if err != nil {
		return nil, err
	}

	if err := validateEntries(dict); err != nil {
		return nil, err
	}
	return dict, nil
}

// validateEntries checks what the compiler guarantees for every entry.
func validateEntries(dict *onomatopoeia.Dictionary) error {
	for _, key := range dict.Keys() {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("invalid entry found: phonetic form is required")
		}
		senses := dict.Senses(key)
		if len(senses) == 0 {
			return fmt.Errorf("invalid entry found: %s has no senses", key)
		}
		for i, sense := range senses {
			if !isClean(sense.English) {
				return fmt.Errorf("invalid entry found: %s sense %d: english is not normalized", key, i+1)
			}
			if sense.Details == nil {
				continue
			}
			if *sense.Details == "" {
				return fmt.Errorf("invalid entry found: %s sense %d: empty details must be null", key, i+1)
			}
			if !isClean(*sense.Details) {
				return fmt.Errorf("invalid entry found: %s sense %d: details are not normalized", key, i+1)
			}
		}
	}
	return nil
}

// isClean reports whether s is trimmed and free of whitespace runs.
func isClean(s string) bool {
	return strings.Join(strings.Fields(s), " ") == s
}

// validateDictionary performs validation on the dictionary file.
func validateDictionary(path string) error {
	dict, err := LoadDictionary(path)
	if err != nil {
		return fmt.Errorf("dictionary validation failed: %w", err)
	}
	stats := dict.Stats()
	fmt.Printf("Dictionary at '%s' is valid (%d keys, %d senses).\n", path, stats.Keys, stats.Senses)
	return nil
}
