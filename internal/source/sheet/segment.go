// Package sheet extracts onomatopoeia entries from the manga sound-effect
// spreadsheets. A sheet has two header rows; row 1 holds a marker label at
// the start of every column group, and each group is four columns wide:
// phonetic form, romanization (ignored), gloss, notes.
package sheet

import (
	"fmt"
	"log/slog"
	"path/filepath"

	giongoerr "github.com/takaryo1010/giongo/internal/errors"
	"github.com/takaryo1010/giongo/internal/onomatopoeia"
)

const (
	format = "sheet"

	// DefaultMarker is the row 1 label that starts a column group.
	DefaultMarker = "Japanese"
	// DefaultArtifact is mojibake of a "More »" link left in exported notes.
	DefaultArtifact = "More Â»"

	markerRow  = 1
	headerRows = 2

	phoneticOffset = 0
	glossOffset    = 2
	notesOffset    = 3
)

// Options configures extraction.
type Options struct {
	// Marker is compared with the row 1 cells exactly.
	Marker string
	// Artifacts are substrings removed from notes before cleaning.
	Artifacts []string
}

// DefaultOptions returns the settings for the published sheets.
func DefaultOptions() Options {
	return Options{
		Marker:    DefaultMarker,
		Artifacts: []string{DefaultArtifact},
	}
}

// ColumnGroup holds the column indices of one repeated block.
type ColumnGroup struct {
	Marker   int
	Phonetic int
	Gloss    int
	Notes    int
}

func newColumnGroup(column int) ColumnGroup {
	return ColumnGroup{
		Marker:   column,
		Phonetic: column + phoneticOffset,
		Gloss:    column + glossOffset,
		Notes:    column + notesOffset,
	}
}

// FindColumnGroups scans the marker row left to right.
func FindColumnGroups(grid Grid, marker string) []ColumnGroup {
	if len(grid) <= markerRow {
		return nil
	}

	var groups []ColumnGroup
	for column, cell := range grid[markerRow] {
		if cell == marker {
			groups = append(groups, newColumnGroup(column))
		}
	}
	return groups
}

// Extract returns the entries of every column group in grid, group by
// group. path is only used in errors.
func Extract(path string, grid Grid, opts Options) ([]onomatopoeia.Entry, error) {
	if len(grid) < headerRows {
		return nil, giongoerr.NewParse(format, path,
			fmt.Sprintf("expected %d header rows, got %d rows", headerRows, len(grid)))
	}

	var entries []onomatopoeia.Entry
	for _, group := range FindColumnGroups(grid, opts.Marker) {
		blocks, err := assemble(path, grid, group, headerRows)
		if err != nil {
			return nil, err
		}
		for _, b := range blocks {
			entries = append(entries, normalize(b, opts.Artifacts)...)
		}
	}
	return entries, nil
}

// ParseFile loads and extracts one sheet.
func ParseFile(path string, opts Options) ([]onomatopoeia.Entry, error) {
	grid, err := LoadGrid(path)
	if err != nil {
		return nil, err
	}
	return Extract(path, grid, opts)
}

// ParseGlob extracts every sheet matching pattern, in lexical path order.
// A pattern that matches nothing yields no entries.
func ParseGlob(pattern string, opts Options, logger *slog.Logger) ([]onomatopoeia.Entry, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, giongoerr.NewIO("glob", pattern, err)
	}
	if len(paths) == 0 {
		logger.Warn("no sheets matched", slog.String("pattern", pattern))
		return nil, nil
	}

	var entries []onomatopoeia.Entry
	for _, path := range paths {
		fileEntries, err := ParseFile(path, opts)
		if err != nil {
			return nil, err
		}
		logger.Info("sheet compiled",
			slog.String("path", path),
			slog.Int("entries", len(fileEntries)),
		)
		entries = append(entries, fileEntries...)
	}
	return entries, nil
}
