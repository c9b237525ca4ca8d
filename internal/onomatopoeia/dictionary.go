package onomatopoeia

// Dictionary maps phonetic forms to their senses. Keys keep the order in
// which they were first added and senses keep insertion order.
type Dictionary struct {
	keys   []string
	senses map[string][]Sense
}

// New returns an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{senses: make(map[string][]Sense)}
}

// Build groups entries by phonetic form.
func Build(entries []Entry) *Dictionary {
	d := New()
	for _, e := range entries {
		d.Add(e)
	}
	return d
}

// Add appends the entry's sense under its phonetic form.
func (d *Dictionary) Add(e Entry) {
	d.Append(e.Phonetic, e.Sense())
}

// Append appends senses under key, registering the key if it is new.
func (d *Dictionary) Append(key string, senses ...Sense) {
	if d.senses == nil {
		d.senses = make(map[string][]Sense)
	}
	if _, ok := d.senses[key]; !ok {
		d.keys = append(d.keys, key)
		d.senses[key] = nil
	}
	d.senses[key] = append(d.senses[key], senses...)
}

// Has reports whether key is present.
func (d *Dictionary) Has(key string) bool {
	_, ok := d.senses[key]
	return ok
}

// Keys returns the phonetic forms in first-seen order.
func (d *Dictionary) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Senses returns the senses stored under key.
func (d *Dictionary) Senses(key string) []Sense {
	return d.senses[key]
}

// Len returns the number of phonetic forms.
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// Stats summarizes a dictionary.
type Stats struct {
	Keys        int
	Senses      int
	WithDetails int
}

// Stats counts keys, senses and senses carrying details.
func (d *Dictionary) Stats() Stats {
	s := Stats{Keys: len(d.keys)}
	for _, key := range d.keys {
		for _, sense := range d.senses[key] {
			s.Senses++
			if sense.Details != nil {
				s.WithDetails++
			}
		}
	}
	return s
}
