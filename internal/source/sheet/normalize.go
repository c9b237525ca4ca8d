package sheet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/takaryo1010/giongo/internal/onomatopoeia"
)

var (
	// \s is ASCII only in RE2; \p{Z} adds ideographic and no-break spaces.
	whitespaceRe  = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+`)
	senseMarkerRe = regexp.MustCompile(`\((\d+)\)`)
)

// numberedSense is the text following a "(n)" marker.
type numberedSense struct {
	index int
	text  string
}

// normalize cleans a block and splits enumerated glosses into one entry per
// sense. Gloss senses find their notes by number, so a sense missing from
// the notes gets nil notes instead of a neighbour's.
func normalize(b block, artifacts []string) []onomatopoeia.Entry {
	gloss := cleanText(b.gloss)
	notes := cleanNotes(b.notes, artifacts)

	glossSenses := splitSenses(gloss)
	if len(glossSenses) == 0 {
		return []onomatopoeia.Entry{onomatopoeia.NewEntry(b.phonetic, gloss, notes)}
	}

	notesByIndex := make(map[int]string)
	for _, s := range splitSenses(notes) {
		notesByIndex[s.index] = s.text
	}

	entries := make([]onomatopoeia.Entry, 0, len(glossSenses))
	for _, s := range glossSenses {
		entries = append(entries, onomatopoeia.Entry{
			Phonetic: b.phonetic,
			Gloss:    s.text,
			Notes:    onomatopoeia.OptionalString(notesByIndex[s.index]),
		})
	}
	return entries
}

// cleanText collapses whitespace runs to one space and trims.
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func cleanNotes(s string, artifacts []string) string {
	for _, artifact := range artifacts {
		if artifact != "" {
			s = strings.ReplaceAll(s, artifact, "")
		}
	}
	return cleanText(s)
}

// splitSenses cuts s at "(n)" markers. Text before the first marker is not
// a sense and is dropped. Returns nil when s has no usable marker.
func splitSenses(s string) []numberedSense {
	var (
		senses    []numberedSense
		open      bool
		index     int
		textStart int
	)
	for _, m := range senseMarkerRe.FindAllStringSubmatchIndex(s, -1) {
		n, err := strconv.Atoi(s[m[2]:m[3]])
		if err != nil {
			// Out of int range; leave the marker in the text.
			continue
		}
		if open {
			senses = append(senses, numberedSense{index: index, text: senseText(s[textStart:m[0]])})
		}
		open = true
		index = n
		textStart = m[1]
	}
	if open {
		senses = append(senses, numberedSense{index: index, text: senseText(s[textStart:])})
	}
	return senses
}

func senseText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	return strings.TrimSpace(s)
}
