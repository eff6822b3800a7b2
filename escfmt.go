package escfmt

import (
	"fmt"
	"io"
	"strings"
)

// Renderable is a value that can write its text representation. It has the
// method set of [io.WriterTo], so any io.WriterTo is a Renderable. Note that
// some WriterTo implementations, such as *bytes.Buffer, drain themselves.
type Renderable interface {
	WriteTo(w io.Writer) (int64, error)
}

// Escaped renders a value through an escaper. It only refers to the value;
// nothing is copied or rendered until it is written.
//
// Escaped implements [io.WriterTo], [fmt.Formatter] and [fmt.Stringer], so it
// can be written directly or embedded in any fmt call:
//
//	fmt.Printf("foo=\"%v\"\n", escfmt.Text(`bar="baz"`).EscapedWith(escfmt.Default))
//	// foo="bar=\"baz\""
type Escaped struct {
	value Renderable
	esc   Escaper
}

// Wrap returns v escaped with esc. A nil esc escapes nothing.
func Wrap(v Renderable, esc Escaper) Escaped {
	return Escaped{value: v, esc: esc}
}

// With returns any value escaped with esc. The value is adapted with [Value].
func With(v any, esc Escaper) Escaped {
	return Wrap(Value(v), esc)
}

// EscapedWith escapes the already escaped output again with esc.
func (e Escaped) EscapedWith(esc Escaper) Escaped {
	return Wrap(e, esc)
}

// WriteTo renders the value into w, escaping each rune as it is written. It
// returns the number of bytes written to w. The first error reported by the
// value or by w stops the render and is returned as is; whatever was
// written before it stays written.
func (e Escaped) WriteTo(w io.Writer) (int64, error) {
	ew := NewWriter(w, fresh(e.esc))
	if err := e.render(ew, nil, 0); err != nil {
		return ew.written, err
	}
	// The value may have dropped an error it got back from the sink.
	err := ew.Flush()
	return ew.written, err
}

// Format implements [fmt.Formatter]. Flags, width and precision apply to
// arbitrary Go values passed to [With] or [Value]; text and other
// renderables ignore them. A failed render is reported in place, like fmt
// reports bad verbs: %!v(ERROR=...).
func (e Escaped) Format(f fmt.State, verb rune) {
	ew := NewWriter(f, fresh(e.esc))
	err := e.render(ew, f, verb)
	if err == nil {
		err = ew.Flush()
	}
	if err != nil {
		fmt.Fprintf(f, "%%!%c(ERROR=%v)", verb, err)
	}
}

// String renders the escaped value into a string.
func (e Escaped) String() string {
	var b strings.Builder
	if _, err := e.WriteTo(&b); err != nil {
		return fmt.Sprintf("%%!v(ERROR=%v)", err)
	}
	return b.String()
}

// Width reports how many terminal columns the escaped output occupies.
func (e Escaped) Width() (int, error) {
	return Width(e, nil)
}

func (e Escaped) render(w io.Writer, f fmt.State, verb rune) error {
	if e.value == nil {
		return nil
	}
	if v, ok := e.value.(anyValue); ok && f != nil {
		_, err := fmt.Fprintf(w, fmt.FormatString(f, verb), v.v)
		return err
	}
	if inner, ok := e.value.(Escaped); ok && f != nil {
		// Keep forwarding the fmt directive through nested wrappers.
		iw := NewWriter(w, fresh(inner.esc))
		if err := inner.render(iw, f, verb); err != nil {
			return err
		}
		return iw.Flush()
	}
	_, err := e.value.WriteTo(w)
	return err
}
