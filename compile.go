package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	giongoerr "github.com/takaryo1010/giongo/internal/errors"
	"github.com/takaryo1010/giongo/internal/onomatopoeia"
	"github.com/takaryo1010/giongo/internal/source/sheet"
	"github.com/takaryo1010/giongo/internal/source/tabbed"
)

// CompileResult describes one compilation run.
type CompileResult struct {
	Path   string
	Format onomatopoeia.Format
	Stats  onomatopoeia.Stats
	Digest string
	Wrote  bool
}

// compileRawEntries reads the tab-delimited list first, then every sheet.
func compileRawEntries(cfg *Config, logger *slog.Logger) ([]onomatopoeia.Entry, error) {
	entries, err := tabbed.Parse(cfg.SimplePath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile simple list: %w", err)
	}
	logger.Info("simple list compiled",
		slog.String("path", cfg.SimplePath),
		slog.Int("entries", len(entries)),
	)

	sheetEntries, err := sheet.ParseGlob(cfg.SheetGlob, cfg.SheetOptions(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to compile sheets: %w", err)
	}

	return append(entries, sheetEntries...), nil
}

// compile builds the dictionary and writes it unless cfg.DryRun is set.
// Nothing is written when any source fails.
func compile(cfg *Config, logger *slog.Logger) (*CompileResult, error) {
	format, err := cfg.OutputFormat()
	if err != nil {
		return nil, err
	}

	entries, err := compileRawEntries(cfg, logger)
	if err != nil {
		return nil, err
	}
	dict := onomatopoeia.Build(entries)

	var buf bytes.Buffer
	if err := onomatopoeia.Encode(&buf, dict, format); err != nil {
		return nil, err
	}

	result := &CompileResult{
		Path:   cfg.OutputPath,
		Format: format,
		Stats:  dict.Stats(),
		Digest: onomatopoeia.Digest(buf.Bytes()),
	}
	attrs := []any{
		slog.String("path", result.Path),
		slog.String("format", string(result.Format)),
		slog.Int("keys", result.Stats.Keys),
		slog.Int("senses", result.Stats.Senses),
		slog.String("blake3", result.Digest),
	}

	if cfg.DryRun {
		logger.Info("dry run, dictionary not written", attrs...)
		return result, nil
	}

	if err := writeFileAtomic(cfg.OutputPath, buf.Bytes()); err != nil {
		return nil, err
	}
	result.Wrote = true
	logger.Info("dictionary written", attrs...)

	return result, nil
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return giongoerr.NewIO("create temp file in", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return giongoerr.NewIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return giongoerr.NewIO("close", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return giongoerr.NewIO("chmod", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return giongoerr.NewIO("rename", tmpName, err)
	}
	return nil
}
