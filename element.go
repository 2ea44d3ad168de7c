package mdw

type elementKind uint8

const (
	elemText elementKind = iota
	elemSpan
	elemLink
	elemHeading
	elemParagraph
	elemList
	elemQuote
)

// Element is one node of a Markdown document tree. Elements are built
// with the package constructors, optionally extended with Append and
// the style toggles, and serialized by Writer.Write. An element tree is
// a strict tree: every child belongs to exactly one parent.
type Element struct {
	kind     elementKind
	text     string // text fragment
	dest     string // link address
	level    int    // heading level
	ordered  bool
	bold     bool
	italic   bool
	code     bool
	children []*Element
}

// Text returns a plain text fragment. The text is escaped at
// serialization time; it is never rejected, however hostile.
func Text(s string) *Element {
	return &Element{kind: elemText, text: s}
}

// Heading returns a heading element. Level must be between 1 and 6
// inclusive; anything else is a composition bug and panics.
func Heading(level int, s string) *Element {
	if level < 1 || level > 6 {
		panic("mdw: heading level must be between 1 and 6")
	}
	return &Element{kind: elemHeading, level: level, children: []*Element{Text(s)}}
}

// Paragraph returns a paragraph element seeded with one text fragment.
func Paragraph(s string) *Element {
	return &Element{kind: elemParagraph, children: []*Element{Text(s)}}
}

// Link returns a link element pointing at dest. The children form the
// visible text; the address is always a plain fragment, never a
// sub-tree. A link must not contain another link.
func Link(dest string, children ...*Element) *Element {
	return &Element{kind: elemLink, dest: dest, children: children}
}

// Bold returns a bold span over s.
func Bold(s string) *Element {
	return Text(s).Bold()
}

// Italic returns an italic span over s.
func Italic(s string) *Element {
	return Text(s).Italic()
}

// Code returns an inline code span over s. The content is emitted
// verbatim behind a backtick fence sized to the longest backtick run
// in the content.
func Code(s string) *Element {
	return Text(s).Code()
}

// BulletList returns an unordered list with the given items. An item
// that is itself a list nests under the preceding item.
func BulletList(items ...*Element) *Element {
	return &Element{kind: elemList, children: items}
}

// NumberedList returns an ordered list with the given items.
func NumberedList(items ...*Element) *Element {
	return &Element{kind: elemList, ordered: true, children: items}
}

// Quote returns a block quote over the given children. Each child is
// emitted on its own quoted line; nested quotes stack their markers.
func Quote(children ...*Element) *Element {
	return &Element{kind: elemQuote, children: children}
}

// Append adds children to the element and returns it for chaining.
// Appending to a text fragment is a composition bug and panics; use a
// span or a container element instead.
func (e *Element) Append(children ...*Element) *Element {
	if e.kind == elemText {
		panic("mdw: cannot append to a text fragment")
	}
	e.children = append(e.children, children...)
	return e
}

// Bold marks the span as bold and returns it. Called on a plain text
// fragment, the fragment is promoted to a span first. Styling a link
// is a composition bug: style the link text before constructing the
// link.
func (e *Element) Bold() *Element {
	e.promote("bold").bold = true
	return e
}

// Italic marks the span as italic and returns it.
func (e *Element) Italic() *Element {
	e.promote("italic").italic = true
	return e
}

// Code marks the span as inline code and returns it. Inside the code
// fence no escaping is applied; the fence length is computed from the
// content at serialization time.
func (e *Element) Code() *Element {
	e.promote("code").code = true
	return e
}

func (e *Element) promote(style string) *Element {
	switch e.kind {
	case elemSpan:
		return e
	case elemText:
		inner := &Element{kind: elemText, text: e.text}
		e.kind = elemSpan
		e.text = ""
		e.children = []*Element{inner}
		return e
	case elemLink:
		panic("mdw: cannot apply " + style + " to a link; style the link text before constructing the link")
	default:
		panic("mdw: cannot apply " + style + " to this element")
	}
}

func containsLink(e *Element) bool {
	if e.kind == elemLink {
		return true
	}
	for _, child := range e.children {
		if containsLink(child) {
			return true
		}
	}
	return false
}
