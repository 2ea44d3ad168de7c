// Package mdw assembles and serializes Markdown documents.
//
// This package is built for programmatic document generation: callers
// compose a tree of typed elements (headings, paragraphs, styled spans,
// links, lists, block quotes) and serialize it to an io.Writer in a
// single depth-first pass. Literal text is escaped per context so that
// arbitrary content, including content full of Markdown punctuation,
// round-trips through a Markdown renderer with its intended structure.
//
// Core properties:
//   - Context-aware backslash escaping; code spans pass bytes through
//     verbatim behind a fence sized to the longest backtick run
//   - Single-pass streaming serialization, no document buffering
//   - Structural misuse (nested headings, links inside links) fails
//     fast instead of emitting ambiguous output
//
// Example:
//
//	w := mdw.NewWriter(os.Stdout)
//	if err := w.Write(mdw.Heading(1, "Release notes")); err != nil {
//		log.Fatal(err)
//	}
//	para := mdw.Paragraph("See the changelog at ").
//		Append(mdw.Link("https://example.com/log_(v2)", mdw.Text("v2 [draft]")))
//	if err := w.Write(para); err != nil {
//		log.Fatal(err)
//	}
//
// Serialization can be customized using WriteOptions such as soft
// wrapping of paragraph bodies.
package mdw
