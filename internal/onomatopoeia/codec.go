package onomatopoeia

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateKey is returned when a decoded document repeats a phonetic form.
var ErrDuplicateKey = errors.New("duplicate key")

// Format is a serialization format for a Dictionary.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown dictionary format %q", s)
	}
}

// FormatForPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes d to w, indented by two spaces and ending in a newline.
func Encode(w io.Writer, d *Dictionary, format Format) error {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("failed to encode dictionary json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("failed to encode dictionary yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode dictionary yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown dictionary format %q", format)
	}

	out := buf.Bytes()
	if format == FormatYAML {
		out = spaceTopLevelKeys(out)
	}
	_, err := w.Write(out)
	return err
}

// Decode reads a Dictionary, keeping the document's key order.
func Decode(r io.Reader, format Format) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	d := New()
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("failed to parse dictionary json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("failed to parse dictionary yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown dictionary format %q", format)
	}
	return d, nil
}

// MarshalJSON writes the keys in insertion order. encoding/json would sort
// them if the dictionary were a map.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(d.sensesOrEmpty(key)); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON replaces d with the object in data.
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dictionary must be a JSON object")
	}

	decoded := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		if decoded.Has(key) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
		}

		var senses []Sense
		if err := dec.Decode(&senses); err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}
		decoded.Append(key, senses...)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = *decoded
	return nil
}

// MarshalYAML encodes d as a mapping node so key order survives.
func (d *Dictionary) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range d.keys {
		var value yaml.Node
		if err := value.Encode(d.sensesOrEmpty(key)); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}
	return node, nil
}

// UnmarshalYAML replaces d with the mapping in value.
func (d *Dictionary) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: dictionary must be a mapping", value.Line)
	}

	decoded := New()
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		if decoded.Has(key) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
		}

		var senses []Sense
		if err := value.Content[i+1].Decode(&senses); err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}
		decoded.Append(key, senses...)
	}

	*d = *decoded
	return nil
}

func (d *Dictionary) sensesOrEmpty(key string) []Sense {
	if senses := d.senses[key]; senses != nil {
		return senses
	}
	return []Sense{}
}

// spaceTopLevelKeys puts a blank line before every top-level key except the
// first so the YAML document diffs one entry at a time.
func spaceTopLevelKeys(doc []byte) []byte {
	lines := strings.Split(string(doc), "\n")
	formatted := make([]string, 0, len(lines))
	for i, line := range lines {
		if i > 0 && line != "" && line[0] != ' ' && line[0] != '-' {
			formatted = append(formatted, "")
		}
		formatted = append(formatted, line)
	}
	return []byte(strings.Join(formatted, "\n"))
}
