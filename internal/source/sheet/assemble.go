package sheet

import (
	"fmt"
	"strings"

	giongoerr "github.com/takaryo1010/giongo/internal/errors"
)

type assemblerState int

const (
	stateNoEntry assemblerState = iota
	stateInEntry
)

// block is one entry's text as it appears in the sheet, before cleaning.
type block struct {
	row      int // row holding the phonetic form
	phonetic string
	gloss    string
	notes    string
}

// assembler groups the rows of one column group into blocks. A non-empty
// phonetic cell starts a block; rows with an empty phonetic cell continue
// the current one.
type assembler struct {
	state    assemblerState
	row      int
	phonetic string
	gloss    strings.Builder
	notes    strings.Builder
	blocks   []block
}

func (a *assembler) start(row int, phonetic string) {
	a.flush()
	a.state = stateInEntry
	a.row = row
	a.phonetic = phonetic
}

// append adds a row's text to the pending block. Text read in stateNoEntry
// has no block to belong to and is dropped.
func (a *assembler) append(gloss, notes string) {
	if a.state != stateInEntry {
		return
	}
	a.gloss.WriteString(gloss)
	a.gloss.WriteByte(' ')
	a.notes.WriteString(notes)
	a.notes.WriteByte(' ')
}

func (a *assembler) flush() {
	if a.state != stateInEntry {
		return
	}
	a.blocks = append(a.blocks, block{
		row:      a.row,
		phonetic: a.phonetic,
		gloss:    a.gloss.String(),
		notes:    a.notes.String(),
	})
	a.state = stateNoEntry
	a.phonetic = ""
	a.gloss.Reset()
	a.notes.Reset()
}

// assemble walks rows[firstRow:] for one column group.
func assemble(path string, rows [][]string, group ColumnGroup, firstRow int) ([]block, error) {
	var a assembler
	for i := firstRow; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= group.Notes {
			return nil, giongoerr.NewRowParse(format, path, i,
				fmt.Sprintf("row has %d cells, column group at %d needs %d", len(row), group.Marker, group.Notes+1))
		}

		if phonetic := phoneticForm(row[group.Phonetic]); phonetic != "" {
			a.start(i, phonetic)
		}
		a.append(row[group.Gloss], row[group.Notes])
	}
	a.flush()

	return a.blocks, nil
}

// phoneticForm strips the comma some cells use to separate spellings.
func phoneticForm(cell string) string {
	cell = strings.TrimSpace(cell)
	cell = strings.TrimSuffix(cell, ",")
	return strings.TrimSpace(cell)
}
