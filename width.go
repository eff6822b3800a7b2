package escfmt

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Width renders v escaped with esc and reports the display width of the
// result in terminal columns, as a table layout would measure a cell. The
// output is measured one grapheme cluster at a time as it streams; only the
// cluster still being written is held.
func Width(v Renderable, esc Escaper) (int, error) {
	var cw columnWriter
	_, err := Wrap(v, esc).WriteTo(&cw)
	cw.flush()
	return cw.cols, err
}

// columnWriter counts columns. A cluster can span several writes, so the
// last one seen stays pending until text after it closes it, or until flush.
type columnWriter struct {
	cols    int
	pending string
}

func (c *columnWriter) Write(p []byte) (int, error) {
	text := c.pending + string(p)
	c.pending = ""
	clusters := graphemes.FromString(text)
	for clusters.Next() {
		if c.pending != "" {
			c.cols += runewidth.StringWidth(c.pending)
		}
		c.pending = clusters.Value()
	}
	return len(p), nil
}

func (c *columnWriter) flush() {
	if c.pending != "" {
		c.cols += runewidth.StringWidth(c.pending)
		c.pending = ""
	}
}
