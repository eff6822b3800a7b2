package escfmt

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidTable = errors.New("invalid escape table")
)

// Escaper decides, one rune at a time, what to write in place of that rune.
// Escape returns the replacement and true, or ("", false) to write the rune
// unchanged. It is called once per rune, in the order the value produces
// them, and must handle every rune including [utf8.RuneError].
type Escaper interface {
	Escape(r rune) (string, bool)
}

// Cloner is implemented by escapers that carry state from one rune to the
// next. A render clones the escaper first, so each render starts from the
// same state and two renders never share it.
type Cloner interface {
	Clone() Escaper
}

// EscaperFunc adapts a plain function to [Escaper].
type EscaperFunc func(r rune) (string, bool)

// Escape calls f(r).
func (f EscaperFunc) Escape(r rune) (string, bool) { return f(r) }

// Identity never escapes anything. It must not be reassigned.
var Identity Escaper = identity{}

type identity struct{}

func (identity) Escape(rune) (string, bool) { return "", false }

// Table maps runes to their replacements. Runes not in the table pass
// through unchanged.
type Table map[rune]string

// Escape looks r up in the table.
func (t Table) Escape(r rune) (string, bool) {
	s, ok := t[r]
	return s, ok
}

// Chain returns an escaper that asks each escaper in turn and uses the first
// replacement reported. Nil escapers are skipped.
func Chain(escapers ...Escaper) Escaper {
	var list []Escaper
	for _, e := range escapers {
		if e != nil {
			list = append(list, e)
		}
	}
	return chain(list)
}

type chain []Escaper

func (c chain) Escape(r rune) (string, bool) {
	for _, e := range c {
		if s, ok := e.Escape(r); ok {
			return s, true
		}
	}
	return "", false
}

// Clone clones every member that is a [Cloner].
func (c chain) Clone() Escaper {
	out := make(chain, len(c))
	for i, e := range c {
		out[i] = fresh(e)
	}
	return out
}

var defaultTable = Table{
	'\t': `\t`,
	'\r': `\r`,
	'\n': `\n`,
	'"':  `\"`,
	'\'': `\'`,
	'\\': `\\`,
}

// Default escapes quotes, backslash and control characters the way a quoted
// string literal would spell them:
//
//	\t \r \n " ' \  ->  \t \r \n \" \' \\
//	other controls  ->  \xHH
//
// Everything else, including non-ASCII text, is written unchanged. It must
// not be reassigned.
var Default Escaper = defaultEscaper{}

type defaultEscaper struct{}

func (defaultEscaper) Escape(r rune) (string, bool) {
	if s, ok := defaultTable[r]; ok {
		return s, true
	}
	if unicode.IsControl(r) {
		return fmt.Sprintf(`\x%02x`, r), true
	}
	return "", false
}

// DefaultTable returns a copy of the fixed part of [Default], without the
// \xHH fallback for other control characters. Use it as a starting point for
// a custom [Table].
func DefaultTable() Table {
	out := make(Table, len(defaultTable))
	for r, s := range defaultTable {
		out[r] = s
	}
	return out
}

// fresh returns the escaper a single render should use.
func fresh(e Escaper) Escaper {
	if e == nil {
		return identity{}
	}
	if c, ok := e.(Cloner); ok {
		if cl := c.Clone(); cl != nil {
			return cl
		}
	}
	return e
}
