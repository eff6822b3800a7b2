package escfmt

import (
	"fmt"
	"io"
	"iter"
)

// Text is a string that renders as itself.
type Text string

// WriteTo writes the text to w.
func (t Text) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(t))
	return int64(n), err
}

// EscapedWith returns the text escaped with esc.
func (t Text) EscapedWith(esc Escaper) Escaped { return Wrap(t, esc) }

// Bytes is UTF-8 text held in a byte slice. The slice is written as is,
// never copied.
type Bytes []byte

// WriteTo writes the bytes to w.
func (b Bytes) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b)
	return int64(n), err
}

// EscapedWith returns the bytes escaped with esc.
func (b Bytes) EscapedWith(esc Escaper) Escaped { return Wrap(b, esc) }

// Func renders by calling the function with the destination.
type Func func(w io.Writer) error

// WriteTo calls f with w.
func (f Func) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := f(cw)
	return cw.n, err
}

// EscapedWith returns the function's output escaped with esc.
func (f Func) EscapedWith(esc Escaper) Escaped { return Wrap(f, esc) }

// Formatted renders a printf-style format with its arguments.
type Formatted struct {
	format string
	args   []any
}

// Fmt returns a renderable for fmt.Fprintf(w, format, args...).
func Fmt(format string, args ...any) Formatted {
	return Formatted{format: format, args: args}
}

// WriteTo formats into w.
func (f Formatted) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, f.format, f.args...)
	return int64(n), err
}

// EscapedWith returns the formatted output escaped with esc.
func (f Formatted) EscapedWith(esc Escaper) Escaped { return Wrap(f, esc) }

// Seq renders each string the sequence yields, in order, one write per
// string. The sequence is consumed lazily and may be unbounded; rendering
// stops at the first write error.
type Seq iter.Seq[string]

// WriteTo writes every chunk of the sequence to w.
func (s Seq) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		err   error
	)
	s(func(chunk string) bool {
		var n int
		n, err = io.WriteString(w, chunk)
		total += int64(n)
		return err == nil
	})
	return total, err
}

// EscapedWith returns the sequence escaped with esc.
func (s Seq) EscapedWith(esc Escaper) Escaped { return Wrap(s, esc) }

// Chan returns a [Seq] that renders the strings received from ch until it is
// closed. It is a thin wrapper around [Seq].
func Chan(ch <-chan string) Seq {
	return Seq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// Value adapts any value to a [Renderable]. Renderables are returned as is,
// strings and byte slices become [Text] and [Bytes], and everything else
// renders the way fmt prints it with %v, so [fmt.Stringer] and
// [fmt.Formatter] implementations are honoured.
func Value(v any) Renderable {
	switch x := v.(type) {
	case Renderable:
		return x
	case string:
		return Text(x)
	case []byte:
		return Bytes(x)
	default:
		return anyValue{v: v}
	}
}

type anyValue struct {
	v any
}

func (a anyValue) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprint(w, a.v)
	return int64(n), err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
