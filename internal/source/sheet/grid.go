package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	giongoerr "github.com/takaryo1010/giongo/internal/errors"
)

// Grid is the cell text of one sheet, row by row.
type Grid [][]string

var utf8BOM = []byte("\xef\xbb\xbf")

// LoadGrid reads a whole sheet into memory. .xlsx workbooks are read with
// excelize (first sheet), .tsv files are tab separated and anything else is
// read as CSV.
func LoadGrid(path string) (Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path)
	case ".tsv":
		return loadDelimited(path, '\t')
	default:
		return loadDelimited(path, ',')
	}
}

func loadDelimited(path string, comma rune) (Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, giongoerr.NewIO("read", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, giongoerr.NewParse(format, path, err.Error())
	}
	return rows, nil
}

func loadWorkbook(path string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, giongoerr.NewIO("open", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, giongoerr.NewParse(format, path, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, giongoerr.NewIO("read", path, fmt.Errorf("sheet %s: %w", sheets[0], err))
	}
	return padRows(rows), nil
}

// padRows widens every row to the widest one. excelize omits trailing empty
// cells, which would otherwise look like truncated rows.
func padRows(rows [][]string) Grid {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]string, width-len(row))...)
		}
	}
	return rows
}
