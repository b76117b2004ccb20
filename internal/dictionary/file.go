package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the on-disk encoding of a dictionary
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

// FormatFor picks the format from the file extension. Anything that is not
// .yaml, .yml or .toml is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// WriteOptions controls how a dictionary is serialized
type WriteOptions struct {
	// Compact writes JSON on a single line without indentation
	Compact bool
}

// ReadFile loads a flat dictionary from path
func ReadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	var d *Dictionary
	switch FormatFor(path) {
	case FormatYAML:
		d, err = ParseYAML(data)
	case FormatTOML:
		d, err = ParseTOML(data)
	default:
		d, err = ParseJSON(data)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return d, nil
}

// ParseJSON parses a JSON object whose values are all strings, keeping the
// order in which keys appear.
func ParseJSON(data []byte) (*Dictionary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	t, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, err
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", t)
	}

	d := New()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %T", kt)
		}

		vt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		value, ok := vt.(string)
		if !ok {
			return nil, fmt.Errorf("expected string value for key %q, got %s", key, describeToken(vt))
		}

		d.Set(key, value)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	// Nothing but whitespace may follow the object.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected data after top-level object")
	}

	return d, nil
}

func describeToken(t json.Token) string {
	switch v := t.(type) {
	case json.Delim:
		if v == '{' {
			return "object"
		}
		return "array"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", t)
	}
}

// ParseYAML parses a flat YAML mapping with string values
func ParseYAML(data []byte) (*Dictionary, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML root must be a mapping, got kind %d", root.Kind)
	}

	d := New()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := root.Content[i+1]

		if valNode.Kind != yaml.ScalarNode || valNode.ShortTag() != "!!str" {
			return nil, fmt.Errorf("expected string value for key %q (line %d)", keyNode.Value, valNode.Line)
		}
		d.Set(keyNode.Value, valNode.Value)
	}

	return d, nil
}

// MarshalJSON encodes the dictionary as a JSON object in key order.
// HTML characters are written as-is.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	return marshalJSON(d, WriteOptions{Compact: true})
}

func marshalJSON(d *Dictionary, opts WriteOptions) ([]byte, error) {
	var b bytes.Buffer

	if d.Len() == 0 {
		b.WriteString("{}")
		if !opts.Compact {
			b.WriteByte('\n')
		}
		return b.Bytes(), nil
	}

	b.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		if !opts.Compact {
			b.WriteString("\n  ")
		}

		k, err := jsonString(key)
		if err != nil {
			return nil, err
		}
		v, err := jsonString(d.values[key])
		if err != nil {
			return nil, err
		}

		b.Write(k)
		b.WriteByte(':')
		if !opts.Compact {
			b.WriteByte(' ')
		}
		b.Write(v)
	}
	if !opts.Compact {
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	if !opts.Compact {
		b.WriteByte('\n')
	}

	return b.Bytes(), nil
}

// jsonString encodes s as a JSON string without escaping <, > and &
func jsonString(s string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

func marshalYAML(d *Dictionary) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range d.keys {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d.values[key]},
		)
	}

	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Marshal encodes the dictionary in the given format
func Marshal(d *Dictionary, format Format, opts WriteOptions) ([]byte, error) {
	switch format {
	case FormatYAML:
		return marshalYAML(d)
	case FormatTOML:
		return marshalTOML(d)
	default:
		return marshalJSON(d, opts)
	}
}

// WriteFile serializes the dictionary and writes it to path, replacing any
// existing file. The content goes to a temporary file in the same directory
// first, so a failed write leaves no partial output behind.
func WriteFile(path string, d *Dictionary, opts WriteOptions) error {
	data, err := Marshal(d, FormatFor(path), opts)
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsontrans-*")
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	return nil
}
