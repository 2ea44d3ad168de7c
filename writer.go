package mdw

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Writer serializes element trees as Markdown to an io.Writer. The
// destination is a raw append stream: a Write that fails mid-tree
// leaves whatever was already emitted in place. Writer is not safe for
// concurrent use; single-writer discipline is the caller's job.
type Writer struct {
	w   io.Writer
	cfg writeConfig
}

// NewWriter creates a document writer.
func NewWriter(w io.Writer, opts ...WriteOption) *Writer {
	cfg := writeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Writer{w: w, cfg: cfg}
}

// Write serializes one top-level element. Errors from the underlying
// io.Writer are returned verbatim; structural misuse of the element
// tree (a nested heading or paragraph, a link wrapping a link) panics,
// since it is a bug in how the tree was assembled, not a data error.
func (m *Writer) Write(el *Element) error {
	return m.writeElement(m.w, el, false, escapeNormal)
}

// writeElement is the single dispatch point of the serializer. The
// only state threaded through the recursion is the inner flag and the
// escape context; both are plain parameters.
func (m *Writer) writeElement(w io.Writer, el *Element, inner bool, ctx escapeContext) error {
	switch el.kind {
	case elemHeading:
		if inner {
			panic("mdw: heading cannot be nested inside another element")
		}
		return m.writeHeading(w, el)
	case elemParagraph:
		if inner {
			panic("mdw: paragraph cannot be nested inside another element")
		}
		return m.writeBlock(w, func(w io.Writer) error {
			return m.writeChildren(w, el.children, ctx)
		})
	case elemList:
		if inner {
			return m.writeListItems(w, el)
		}
		return m.writeLines(w, func(w io.Writer) error {
			return m.writeListItems(w, el)
		})
	case elemQuote:
		if inner {
			return m.writeQuoteBody(w, el)
		}
		return m.writeLines(w, func(w io.Writer) error {
			return m.writeQuoteBody(w, el)
		})
	default:
		if inner {
			return m.writeInline(w, el, ctx)
		}
		return m.writeBlock(w, func(w io.Writer) error {
			return m.writeInline(w, el, ctx)
		})
	}
}

func (m *Writer) writeInline(w io.Writer, el *Element, ctx escapeContext) error {
	switch el.kind {
	case elemText:
		return writeEscaped(w, el.text, ctx)
	case elemSpan:
		return m.writeSpan(w, el, ctx)
	default:
		return m.writeLink(w, el, ctx)
	}
}

func (m *Writer) writeChildren(w io.Writer, children []*Element, ctx escapeContext) error {
	for _, child := range children {
		if err := m.writeElement(w, child, true, ctx); err != nil {
			return err
		}
	}
	return nil
}

// writeBlock frames an inline body as its own block: a separating
// newline before, the body, then a blank line. When a wrap width is
// configured the body is buffered and soft-wrapped before it goes out;
// this is the only place the serializer ever buffers.
func (m *Writer) writeBlock(w io.Writer, body func(io.Writer) error) error {
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	if m.cfg.wrapWidth > 0 {
		var buf bytes.Buffer
		if err := body(&buf); err != nil {
			return err
		}
		if err := writeString(w, wordwrap.String(buf.String(), m.cfg.wrapWidth)); err != nil {
			return err
		}
	} else if err := body(w); err != nil {
		return err
	}
	return writeString(w, "\n\n")
}

// writeLines frames a line-oriented body (list, quote) as a block. The
// body terminates its own lines, so only one trailing newline is
// needed to leave a blank separator.
func (m *Writer) writeLines(w io.Writer, body func(io.Writer) error) error {
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func (m *Writer) writeHeading(w io.Writer, el *Element) error {
	if err := writeString(w, "######"[:el.level]); err != nil {
		return err
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	// Heading content always escapes under the normal rules; any
	// context inherited from outside is meaningless at the top level.
	if err := m.writeChildren(w, el.children, escapeNormal); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func (m *Writer) writeSpan(w io.Writer, el *Element, ctx escapeContext) error {
	marker := spanMarker(el)
	if err := writeString(w, marker); err != nil {
		return err
	}
	if el.code {
		if err := m.writeCodeBody(w, el); err != nil {
			return err
		}
	} else if err := m.writeChildren(w, el.children, ctx); err != nil {
		return err
	}
	return writeString(w, marker)
}

// writeCodeBody emits the code fence, a padding space, the verbatim
// content, a padding space, and the closing fence. The fence is one
// backtick longer than the longest backtick run in the content, so the
// content can never terminate the span early; the padding keeps
// content that starts or ends with a backtick from merging into the
// fence.
func (m *Writer) writeCodeBody(w io.Writer, el *Element) error {
	longest, _ := el.streak('`', 0)
	fence := strings.Repeat("`", longest+1)
	if err := writeString(w, fence); err != nil {
		return err
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	if err := m.writeChildren(w, el.children, escapeInlineCode); err != nil {
		return err
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	return writeString(w, fence)
}

func spanMarker(el *Element) string {
	switch {
	case el.bold && el.italic:
		return "***"
	case el.bold:
		return "**"
	case el.italic:
		return "*"
	default:
		return ""
	}
}

func (m *Writer) writeLink(w io.Writer, el *Element, _ escapeContext) error {
	for _, child := range el.children {
		if containsLink(child) {
			panic("mdw: link cannot contain another link")
		}
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	if err := m.writeChildren(w, el.children, escapeBrackets); err != nil {
		return err
	}
	if err := writeString(w, "]("); err != nil {
		return err
	}
	if err := writeEscaped(w, el.dest, escapeParens); err != nil {
		return err
	}
	return writeString(w, ")")
}

func (m *Writer) writeListItems(w io.Writer, el *Element) error {
	indent := "  "
	if el.ordered {
		indent = "   "
	}
	number := 0
	for i, item := range el.children {
		if item.kind == elemList {
			// A nested list attaches under the preceding item,
			// indented by the parent marker width.
			if err := m.writeListItems(newPrefixWriter(w, indent), item); err != nil {
				return err
			}
			continue
		}
		number++
		marker := "- "
		if el.ordered {
			marker = strconv.Itoa(number) + ". "
		}
		if err := writeString(w, marker); err != nil {
			return err
		}
		cont := newPrefixWriter(w, strings.Repeat(" ", len(marker)))
		cont.pending = false
		if err := m.writeElement(cont, item, true, escapeNormal); err != nil {
			return err
		}
		if !selfTerminating(item.kind) {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if m.cfg.looseLists && i < len(el.children)-1 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Writer) writeQuoteBody(w io.Writer, el *Element) error {
	pw := newPrefixWriter(w, "> ")
	for _, child := range el.children {
		if err := m.writeElement(pw, child, true, escapeNormal); err != nil {
			return err
		}
		if !selfTerminating(child.kind) {
			if err := writeString(pw, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// selfTerminating reports whether the kind emits its own trailing
// newline when serialized inner.
func selfTerminating(kind elementKind) bool {
	return kind == elemList || kind == elemQuote
}

// prefixWriter inserts a prefix at the start of every line written
// through it. Quote markers and list indentation stack by wrapping one
// prefixWriter in another, which keeps nested structures streaming.
type prefixWriter struct {
	w       io.Writer
	prefix  string
	pending bool
}

func newPrefixWriter(w io.Writer, prefix string) *prefixWriter {
	return &prefixWriter{w: w, prefix: prefix, pending: true}
}

func (p *prefixWriter) Write(b []byte) (int, error) {
	written := 0
	for len(b) > 0 {
		if p.pending {
			if _, err := io.WriteString(p.w, p.prefix); err != nil {
				return written, err
			}
			p.pending = false
		}
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			n, err := p.w.Write(b)
			written += n
			return written, err
		}
		n, err := p.w.Write(b[:i+1])
		written += n
		if err != nil {
			return written, err
		}
		p.pending = true
		b = b[i+1:]
	}
	return written, nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
