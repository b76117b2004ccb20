package dictionary

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// ParseTOML parses top-level key/value pairs with string values, keeping
// the order in which keys appear. Tables and dotted keys are rejected since
// the dictionary is flat; quote keys that contain dots.
func ParseTOML(data []byte) (*Dictionary, error) {
	var p unstable.Parser
	p.Reset(data)

	d := New()
	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.KeyValue:
		case unstable.Table, unstable.ArrayTable:
			return nil, fmt.Errorf("table [%s] not supported in a flat dictionary", joinKey(expr))
		default:
			continue
		}

		key := joinKey(expr)
		if n := keyParts(expr); n != 1 {
			return nil, fmt.Errorf("dotted key %s not supported in a flat dictionary", key)
		}

		value := expr.Value()
		if value.Kind != unstable.String {
			return nil, fmt.Errorf("expected string value for key %q, got %s", key, strings.ToLower(value.Kind.String()))
		}

		d.Set(key, string(value.Data))
	}
	if err := p.Error(); err != nil {
		return nil, err
	}

	return d, nil
}

func keyParts(expr *unstable.Node) int {
	n := 0
	it := expr.Key()
	for it.Next() {
		n++
	}
	return n
}

func joinKey(expr *unstable.Node) string {
	var parts []string
	it := expr.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return strings.Join(parts, ".")
}

// marshalTOML writes one key = value line per entry in key order. Quoting
// of keys and values is left to go-toml.
func marshalTOML(d *Dictionary) ([]byte, error) {
	var b bytes.Buffer
	for _, key := range d.keys {
		line, err := toml.Marshal(map[string]string{key: d.values[key]})
		if err != nil {
			return nil, err
		}
		b.Write(line)
	}
	return b.Bytes(), nil
}
