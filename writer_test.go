package mdw

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteDocumentSequence(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(Heading(1, "heading1")); err != nil {
		t.Fatalf("write heading1: %v", err)
	}
	if err := w.Write(Heading(2, "heading2").Append(Text(" appended"))); err != nil {
		t.Fatalf("write heading2: %v", err)
	}
	if err := w.Write(Paragraph("first\nparagraph").Append(Text(" appended"))); err != nil {
		t.Fatalf("write paragraph: %v", err)
	}
	want := "# heading1\n## heading2 appended\n\nfirst\nparagraph appended\n\n"
	if buf.String() != want {
		t.Fatalf("document mismatch\nwant: %q\n got: %q", want, buf.String())
	}
}

func TestHeadingLevels(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "# title\n"},
		{2, "## title\n"},
		{3, "### title\n"},
		{4, "#### title\n"},
		{5, "##### title\n"},
		{6, "###### title\n"},
	}
	for _, tc := range cases {
		got := serialize(t, Heading(tc.level, "title"))
		if got != tc.want {
			t.Fatalf("level %d: got %q want %q", tc.level, got, tc.want)
		}
	}
}

func TestHeadingEscapesContent(t *testing.T) {
	got := serialize(t, Heading(2, "a # b [c]"))
	want := "## a \\# b \\[c\\]\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTopLevelTextFramedAsBlock(t *testing.T) {
	got := serialize(t, Text("plain *text*"))
	want := "\nplain \\*text\\*\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestParagraphEscapesNormalSet(t *testing.T) {
	got := serialize(t, Paragraph("1. not a list\n> not a quote"))
	want := "\n1\\. not a list\n\\> not a quote\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

type failingWriter struct {
	err error
}

func (f *failingWriter) Write(p []byte) (int, error) {
	return 0, f.err
}

func TestWriteErrorPropagatesVerbatim(t *testing.T) {
	sinkErr := errors.New("sink closed")
	w := NewWriter(&failingWriter{err: sinkErr})
	if err := w.Write(Paragraph("content")); !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if err := w.Write(Heading(1, "content")); !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error from heading, got %v", err)
	}
}

type truncatingWriter struct {
	buf   bytes.Buffer
	limit int
	err   error
}

func (tw *truncatingWriter) Write(p []byte) (int, error) {
	if tw.buf.Len()+len(p) > tw.limit {
		room := tw.limit - tw.buf.Len()
		if room > 0 {
			tw.buf.Write(p[:room])
		}
		return room, tw.err
	}
	return tw.buf.Write(p)
}

func TestWriteErrorLeavesPartialOutput(t *testing.T) {
	sinkErr := errors.New("disk full")
	tw := &truncatingWriter{limit: 3, err: sinkErr}
	err := NewWriter(tw).Write(Heading(1, "abcdef"))
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if got := tw.buf.String(); got != "# a" {
		t.Fatalf("expected partial output %q, got %q", "# a", got)
	}
}
