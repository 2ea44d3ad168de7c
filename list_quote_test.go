package mdw

import "testing"

func TestBulletList(t *testing.T) {
	got := serialize(t, BulletList(Text("first"), Text("second")))
	want := "\n- first\n- second\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNumberedListCountsUp(t *testing.T) {
	got := serialize(t, NumberedList(Text("a"), Text("b"), Text("c")))
	want := "\n1. a\n2. b\n3. c\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestListItemsEscape(t *testing.T) {
	got := serialize(t, BulletList(Text("- not a marker")))
	want := "\n- \\- not a marker\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNestedListIndentsUnderPrecedingItem(t *testing.T) {
	list := BulletList(
		Text("top"),
		BulletList(Text("inner"), Text("deeper")),
		Text("after"),
	)
	got := serialize(t, list)
	want := "\n- top\n  - inner\n  - deeper\n- after\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNestedListUnderNumberedItem(t *testing.T) {
	list := NumberedList(
		Text("top"),
		BulletList(Text("inner")),
		Text("after"),
	)
	got := serialize(t, list)
	want := "\n1. top\n   - inner\n2. after\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMultilineItemContinuationIndent(t *testing.T) {
	got := serialize(t, BulletList(Text("line one\nline two")))
	want := "\n- line one\n  line two\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLooseListSeparatesItems(t *testing.T) {
	got := serialize(t, BulletList(Text("a"), Text("b")), WithLooseLists(true))
	want := "\n- a\n\n- b\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestListItemsMayBeStyled(t *testing.T) {
	got := serialize(t, BulletList(Bold("a"), Link("https://x", Text("b"))))
	want := "\n- **a**\n- [b](https://x)\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestQuote(t *testing.T) {
	got := serialize(t, Quote(Text("first line"), Text("second line")))
	want := "\n> first line\n> second line\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestQuoteEscapesContent(t *testing.T) {
	got := serialize(t, Quote(Text("> inner")))
	want := "\n> \\> inner\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNestedQuoteStacksMarkers(t *testing.T) {
	got := serialize(t, Quote(Text("outer"), Quote(Text("inner"))))
	want := "\n> outer\n> > inner\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestQuotePrefixesMultilineText(t *testing.T) {
	got := serialize(t, Quote(Text("one\ntwo")))
	want := "\n> one\n> two\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestQuoteContainsList(t *testing.T) {
	got := serialize(t, Quote(BulletList(Text("a"), Text("b"))))
	want := "\n> - a\n> - b\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
