package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/takaryo1010/giongo/internal/onomatopoeia"
)

func entry(phonetic, gloss string, notes *string) onomatopoeia.Entry {
	return onomatopoeia.Entry{Phonetic: phonetic, Gloss: gloss, Notes: notes}
}

func str(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	artifacts := []string{DefaultArtifact}

	tests := []struct {
		name  string
		block block
		want  []onomatopoeia.Entry
	}{
		{
			name:  "enumerated gloss and notes pair by index",
			block: block{phonetic: "ドン", gloss: "(1) foo; (2) bar; ", notes: "(1) note-a; (2) note-b; "},
			want: []onomatopoeia.Entry{
				entry("ドン", "foo", str("note-a")),
				entry("ドン", "bar", str("note-b")),
			},
		},
		{
			name:  "sense without a numbered note gets nil notes",
			block: block{phonetic: "ドン", gloss: "(1) foo; (2) bar;", notes: "(1) note-a;"},
			want: []onomatopoeia.Entry{
				entry("ドン", "foo", str("note-a")),
				entry("ドン", "bar", nil),
			},
		},
		{
			name:  "no enumeration keeps the whole gloss",
			block: block{phonetic: "ザワザワ", gloss: "  foo \n  bar ", notes: " "},
			want:  []onomatopoeia.Entry{entry("ザワザワ", "foo bar", nil)},
		},
		{
			name:  "no enumeration keeps notes",
			block: block{phonetic: "ザワザワ", gloss: "murmur ", notes: "crowd   noise "},
			want:  []onomatopoeia.Entry{entry("ザワザワ", "murmur", str("crowd noise"))},
		},
		{
			name:  "numbered notes without numbered gloss stay whole",
			block: block{phonetic: "ゴロ", gloss: "rumble", notes: "(1) thunder (2) stomach"},
			want:  []onomatopoeia.Entry{entry("ゴロ", "rumble", str("(1) thunder (2) stomach"))},
		},
		{
			name:  "notes are matched by number not position",
			block: block{phonetic: "パン", gloss: "(1) slap; (2) gunshot;", notes: "(2) a shot; (1) a hand;"},
			want: []onomatopoeia.Entry{
				entry("パン", "slap", str("a hand")),
				entry("パン", "gunshot", str("a shot")),
			},
		},
		{
			name:  "later duplicate note index wins",
			block: block{phonetic: "パン", gloss: "(1) slap;", notes: "(1) first; (1) second;"},
			want:  []onomatopoeia.Entry{entry("パン", "slap", str("second"))},
		},
		{
			name:  "text before the first gloss marker is dropped",
			block: block{phonetic: "ガン", gloss: "see also (1) bonk; (2) stare;", notes: ""},
			want: []onomatopoeia.Entry{
				entry("ガン", "bonk", nil),
				entry("ガン", "stare", nil),
			},
		},
		{
			name:  "empty numbered note is absent",
			block: block{phonetic: "ガン", gloss: "(1) bonk; (2) stare;", notes: "(1) ; (2) glare;"},
			want: []onomatopoeia.Entry{
				entry("ガン", "bonk", nil),
				entry("ガン", "stare", str("glare")),
			},
		},
		{
			name:  "encoding artifact is stripped from notes",
			block: block{phonetic: "ピシャ", gloss: "slam", notes: "a door closing More Â» "},
			want:  []onomatopoeia.Entry{entry("ピシャ", "slam", str("a door closing"))},
		},
		{
			name:  "notes holding only the artifact are absent",
			block: block{phonetic: "ピシャ", gloss: "slam", notes: "More Â»"},
			want:  []onomatopoeia.Entry{entry("ピシャ", "slam", nil)},
		},
		{
			name:  "marker too large for int stays literal",
			block: block{phonetic: "ド", gloss: "(99999999999999999999) boom", notes: ""},
			want:  []onomatopoeia.Entry{entry("ド", "(99999999999999999999) boom", nil)},
		},
		{
			name:  "non numeric parenthesis is not a marker",
			block: block{phonetic: "ド", gloss: "boom (loud)", notes: ""},
			want:  []onomatopoeia.Entry{entry("ド", "boom (loud)", nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.block, artifacts))
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "foo bar", "foo bar"},
		{"runs and newlines", "foo \n\t bar  ", "foo bar"},
		{"ideographic space", "ドキ\u3000\u3000ドキ", "ドキ ドキ"},
		{"no-break space", "a\u00a0\u00a0b", "a b"},
		{"only whitespace", " \n ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanText(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, cleanText(got), "cleaning twice must not change the text")
			assert.NotContains(t, got, "  ")
		})
	}
}

func TestSplitSenses(t *testing.T) {
	assert.Nil(t, splitSenses("no markers here"))
	assert.Nil(t, splitSenses(""))

	got := splitSenses("(3) c; (10) j;")
	assert.Equal(t, []numberedSense{{index: 3, text: "c"}, {index: 10, text: "j"}}, got)

	// A marker with no text after it still yields a sense.
	got = splitSenses("(1) a; (2)")
	assert.Equal(t, []numberedSense{{index: 1, text: "a"}, {index: 2, text: ""}}, got)
}
