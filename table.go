package escfmt

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// LoadTable reads an escape table from a YAML mapping of single characters
// to replacements:
//
//	"<": "&lt;"
//	">": "&gt;"
//	"\t": "\\t"
func LoadTable(r io.Reader) (Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		if errors.Is(err, ErrInvalidTable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidTable, err)
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}

// UnmarshalYAML decodes a mapping of single characters to replacements, so a
// Table can be embedded in a larger YAML document.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: line %d: %s", ErrInvalidTable, node.Line, err)
	}
	out := make(Table, len(raw))
	for key, repl := range raw {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) || (r == utf8.RuneError && size == 1) {
			return fmt.Errorf("%w: line %d: key %q is not a single character", ErrInvalidTable, node.Line, key)
		}
		out[r] = repl
	}
	*t = out
	return nil
}

// MarshalYAML encodes the table as a mapping of characters to replacements.
func (t Table) MarshalYAML() (any, error) {
	out := make(map[string]string, len(t))
	for r, repl := range t {
		out[string(r)] = repl
	}
	return out, nil
}
