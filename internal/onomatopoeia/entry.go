// Package onomatopoeia holds the compiled sound-effect dictionary: the raw
// entries produced by the source readers, the ordered Dictionary they are
// grouped into, and its JSON and YAML encodings.
package onomatopoeia

// Entry is one sense of a phonetic form as read from a source.
// Notes is nil when the source has no usage notes for the sense.
type Entry struct {
	Phonetic string
	Gloss    string
	Notes    *string
}

// NewEntry builds an Entry, mapping empty notes to nil.
func NewEntry(phonetic, gloss, notes string) Entry {
	return Entry{
		Phonetic: phonetic,
		Gloss:    gloss,
		Notes:    OptionalString(notes),
	}
}

// OptionalString returns nil for "" and a pointer to a copy of s otherwise.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Sense is the serialized form of an Entry under its phonetic key.
type Sense struct {
	English string  `json:"english" yaml:"english"`
	Details *string `json:"details" yaml:"details"`
}

// Sense drops the phonetic form, which becomes the dictionary key.
func (e Entry) Sense() Sense {
	return Sense{English: e.Gloss, Details: e.Notes}
}
