// Package tabbed reads the tab-delimited onomatopoeia list: one header line,
// then one entry per line laid out as [ignored, phonetic, gloss, notes...].
// Pure function: file path in, entries out.
package tabbed

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	giongoerr "github.com/takaryo1010/giongo/internal/errors"
	"github.com/takaryo1010/giongo/internal/onomatopoeia"
)

const (
	format    = "tab-delimited"
	delimiter = "\t"
	minFields = 3
	// notesSeparator joins trailing fields that were split on the delimiter.
	notesSeparator = ", "
)

// Parse reads the file at path. A missing file or a line with fewer than
// three fields aborts with an error.
func Parse(path string) ([]onomatopoeia.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, giongoerr.NewIO("read", path, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes parses already-loaded content; path is only used in errors.
func ParseBytes(path string, data []byte) ([]onomatopoeia.Entry, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []onomatopoeia.Entry
	lineNo := -1
	for scanner.Scan() {
		lineNo++
		// Skip header row.
		if lineNo == 0 {
			continue
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, giongoerr.NewRowParse(format, path, lineNo, err.Error())
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, giongoerr.NewIO("scan", path, err)
	}

	return entries, nil
}

func parseLine(line string) (onomatopoeia.Entry, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) < minFields {
		return onomatopoeia.Entry{}, fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields))
	}

	phonetic := collapse(fields[1])
	if phonetic == "" {
		return onomatopoeia.Entry{}, fmt.Errorf("empty phonetic field")
	}

	notes := collapse(strings.Join(fields[minFields:], notesSeparator))
	return onomatopoeia.NewEntry(phonetic, collapse(fields[2]), notes), nil
}

// collapse trims s and reduces inner whitespace runs to one space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
