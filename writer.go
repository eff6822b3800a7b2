package escfmt

import (
	"io"
	"unicode/utf8"
)

// Writer is an [io.Writer] that escapes everything written through it before
// passing it on. Input is decoded as UTF-8 and every rune results in exactly
// one Write on the destination: either the escaper's replacement or the
// rune's own bytes.
//
// A rune split across two calls to Write is held until it is complete. Call
// [Writer.Flush] when done to emit a trailing incomplete sequence. Invalid
// bytes are passed to the escaper as [utf8.RuneError], one byte at a time,
// and written verbatim when it reports no replacement.
//
// Once a write to the destination fails, the Writer stops: every later
// Write and Flush returns that first error without touching the
// destination.
type Writer struct {
	w       io.Writer
	esc     Escaper
	held    [utf8.UTFMax]byte
	nheld   int
	written int64
	err     error
}

// NewWriter returns a Writer escaping into w. A nil esc escapes nothing.
// The escaper is used as given; stateful escapers are not cloned.
func NewWriter(w io.Writer, esc Escaper) *Writer {
	if esc == nil {
		esc = identity{}
	}
	return &Writer{w: w, esc: esc}
}

// Write escapes p into the destination. On a destination error it returns
// the number of bytes of p consumed before the failing rune.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	var n int
	for w.nheld > 0 && n < len(p) {
		take := copy(w.held[w.nheld:], p[n:])
		buf := w.held[:w.nheld+take]
		if !utf8.FullRune(buf) {
			w.nheld += take
			return len(p), nil
		}
		r, size := utf8.DecodeRune(buf)
		if err := w.unit(r, buf[:size]); err != nil {
			return n, err
		}
		if size >= w.nheld {
			n += size - w.nheld
			w.nheld = 0
			continue
		}
		// The held prefix was invalid; keep what follows it and retry.
		w.nheld = copy(w.held[:], w.held[size:w.nheld])
	}
	for n < len(p) {
		rest := p[n:]
		if !utf8.FullRune(rest) {
			w.nheld = copy(w.held[:], rest)
			return len(p), nil
		}
		r, size := utf8.DecodeRune(rest)
		if err := w.unit(r, rest[:size]); err != nil {
			return n, err
		}
		n += size
	}
	return n, nil
}

// Flush writes any held incomplete UTF-8 sequence as invalid bytes. It
// returns the first destination error seen by the Writer, if any.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	for w.nheld > 0 {
		_, size := utf8.DecodeRune(w.held[:w.nheld])
		if err := w.unit(utf8.RuneError, w.held[:size]); err != nil {
			return err
		}
		w.nheld = copy(w.held[:], w.held[size:w.nheld])
	}
	return nil
}

func (w *Writer) unit(r rune, raw []byte) error {
	var (
		n   int
		err error
	)
	if s, ok := w.esc.Escape(r); ok {
		n, err = io.WriteString(w.w, s)
	} else {
		n, err = w.w.Write(raw)
	}
	w.written += int64(n)
	if err != nil {
		w.err = err
	}
	return err
}

// Err returns the first error the destination reported, if any.
func (w *Writer) Err() error { return w.err }
