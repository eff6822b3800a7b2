// Package escfmt escapes text while it is being formatted.
//
// A value is rendered straight into its destination through an [Escaper]
// that sees one rune at a time and may replace it. Nothing is rendered into
// an intermediate buffer first, so large or unbounded values escape with
// constant extra memory.
//
// # Escapers
//
// An [Escaper] maps a rune to an optional replacement:
//
//   - [EscaperFunc] — any func(rune) (string, bool)
//   - [Table] — a fixed map of runes to replacements, loadable from YAML
//     with [LoadTable]
//   - [Chain] — first match across several escapers
//   - [Default] — quotes, backslash and control characters, as in a quoted
//     string literal
//   - [Identity] — escapes nothing
//
// Escapers that keep state between runes implement [Cloner]; each render
// then works on its own clone.
//
// # Values
//
// Anything implementing [io.WriterTo] is a [Renderable]. Adapters cover the
// common cases:
//
//   - [Text] and [Bytes] — literal text
//   - [Fmt] — a printf-style format
//   - [Func] — a function writing to the destination
//   - [Seq] and [Chan] — streamed chunks
//   - [Value] — any Go value, printed as with %v
//
// # Escaping
//
// Each adapter has an EscapedWith method returning an [Escaped]; [With]
// does the same for any value. An Escaped writes itself with WriteTo, or
// embeds in a fmt call:
//
//	v := escfmt.Text(`bar="baz"`).EscapedWith(escfmt.Default)
//	fmt.Printf("foo=\"%v\"\n", v) // foo="bar=\"baz\""
//
// To escape output produced elsewhere, wrap the destination in a [Writer].
//
// # Errors
//
// Rendering introduces no errors of its own. The first error returned by
// the value or the destination stops the render and is returned unchanged;
// output written before it is not rolled back.
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidTable] — a YAML escape table that cannot be decoded
package escfmt
