package sheet

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	giongoerr "github.com/takaryo1010/giongo/internal/errors"
	"github.com/takaryo1010/giongo/internal/logging"
)

const sampleCSV = "\xef\xbb\xbfManga SFX,,,\n" +
	"Japanese,Romaji,English,Notes\n" +
	"\"ドキドキ,\",dokidoki,\"thump\nthump\",heart More Â»\n" +
	",,wrapped,\n" +
	"ビリ,biri,(1) rip; (2) zap;,(2) electric;\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeWorkbook stores rows in the first sheet, leaving empty cells unset
// the way a spreadsheet export does.
func writeWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadGrid_CSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sfx.csv", sampleCSV)

	grid, err := LoadGrid(path)
	require.NoError(t, err)

	require.Len(t, grid, 5)
	assert.Equal(t, "Manga SFX", grid[0][0], "BOM must be stripped")
	assert.Equal(t, "ドキドキ,", grid[2][0])
	assert.Equal(t, "thump\nthump", grid[2][2])
}

func TestLoadGrid_TSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sfx.tsv", "t\t\t\t\nJapanese\tRomaji\tEnglish\tNotes\nバン\tban\tbang, loud\t\n")

	grid, err := LoadGrid(path)
	require.NoError(t, err)

	require.Len(t, grid, 3)
	assert.Equal(t, []string{"バン", "ban", "bang, loud", ""}, grid[2])
}

func TestLoadGrid_XLSXPadsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfx.xlsx")
	writeWorkbook(t, path, [][]string{
		{"Manga SFX"},
		{"Japanese", "Romaji", "English", "Notes"},
		{"バン", "ban", "bang"},
	})

	grid, err := LoadGrid(path)
	require.NoError(t, err)

	require.Len(t, grid, 3)
	for _, row := range grid {
		assert.Len(t, row, 4)
	}
	assert.Equal(t, []string{"バン", "ban", "bang", ""}, grid[2])
}

func TestLoadGrid_Missing(t *testing.T) {
	_, err := LoadGrid(filepath.Join(t.TempDir(), "missing.csv"))

	var ioErr *giongoerr.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseFile_CSVAndXLSXAgree(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "sfx.csv", sampleCSV)

	csvGrid, err := LoadGrid(csvPath)
	require.NoError(t, err)
	xlsxPath := filepath.Join(dir, "sfx.xlsx")
	writeWorkbook(t, xlsxPath, csvGrid)

	fromCSV, err := ParseFile(csvPath, DefaultOptions())
	require.NoError(t, err)
	fromXLSX, err := ParseFile(xlsxPath, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, fromCSV, 3)
	assert.Equal(t, "thump thump wrapped", fromCSV[0].Gloss)
	require.NotNil(t, fromCSV[0].Notes)
	assert.Equal(t, "heart", *fromCSV[0].Notes)
	assert.Equal(t, fromCSV, fromXLSX)
}

func TestParseGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "x,,,\nJapanese,,,\nビー,,b,\n")
	writeFile(t, dir, "a.csv", "x,,,\nJapanese,,,\nエー,,a,\n")
	writeFile(t, dir, "notes.txt", "ignored")

	got, err := ParseGlob(filepath.Join(dir, "*.csv"), DefaultOptions(), logging.Discard())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "エー", got[0].Phonetic)
	assert.Equal(t, "ビー", got[1].Phonetic)
}

func TestParseGlob_NoMatches(t *testing.T) {
	got, err := ParseGlob(filepath.Join(t.TempDir(), "*.csv"), DefaultOptions(), logging.Discard())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseGlob_BadPattern(t *testing.T) {
	_, err := ParseGlob("[", DefaultOptions(), logging.Discard())

	var ioErr *giongoerr.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}

func TestParseGlob_StopsOnMalformedSheet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "only one row\n")

	_, err := ParseGlob(filepath.Join(dir, "*.csv"), DefaultOptions(), logging.Discard())

	assert.ErrorIs(t, err, giongoerr.ErrInvalidInput)
}
