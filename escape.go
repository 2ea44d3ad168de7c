package mdw

import "io"

// escapeContext selects the escape set active while serializing a text
// fragment. Contexts are mutually exclusive; the active context is
// threaded down the recursive serialization call, never stored.
type escapeContext uint8

const (
	// escapeNormal escapes backslash plus the punctuation Markdown
	// treats as block or inline control characters.
	escapeNormal escapeContext = iota
	// escapeInlineCode escapes nothing; fence sizing handles collisions.
	escapeInlineCode
	// escapeBrackets is active inside link text.
	escapeBrackets
	// escapeParens is active inside link addresses.
	escapeParens
)

const (
	normalEscapeSet  = "\\`*_{}[]()#+-.!>"
	bracketEscapeSet = "\\`*_[]"
	parenEscapeSet   = "\\`*_()."
)

var (
	normalEscapes  = makeEscapeTable(normalEscapeSet)
	bracketEscapes = makeEscapeTable(bracketEscapeSet)
	parenEscapes   = makeEscapeTable(parenEscapeSet)
)

func makeEscapeTable(set string) *[256]bool {
	var t [256]bool
	for i := 0; i < len(set); i++ {
		t[set[i]] = true
	}
	return &t
}

func (c escapeContext) table() *[256]bool {
	switch c {
	case escapeNormal:
		return normalEscapes
	case escapeBrackets:
		return bracketEscapes
	case escapeParens:
		return parenEscapes
	default:
		return nil
	}
}

// writeEscaped emits s with every byte in the context's escape set
// prefixed by a backslash. Single forward scan: runs of ordinary bytes
// are flushed in one write. All escapable bytes are ASCII, so scanning
// bytes is UTF-8 safe.
func writeEscaped(w io.Writer, s string, ctx escapeContext) error {
	t := ctx.table()
	if t == nil {
		_, err := io.WriteString(w, s)
		return err
	}
	var pair [2]byte
	pair[0] = '\\'
	start := 0
	for i := 0; i < len(s); i++ {
		if !t[s[i]] {
			continue
		}
		if start < i {
			if _, err := io.WriteString(w, s[start:i]); err != nil {
				return err
			}
		}
		pair[1] = s[i]
		if _, err := w.Write(pair[:]); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		_, err := io.WriteString(w, s[start:])
		return err
	}
	return nil
}
