package mdw

import (
	"bytes"
	"strings"
	"testing"
)

func serialize(t *testing.T, el *Element, opts ...WriteOption) string {
	t.Helper()
	var buf bytes.Buffer
	if err := NewWriter(&buf, opts...).Write(el); err != nil {
		t.Fatalf("write: %v", err)
	}
	return buf.String()
}

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, want) {
			t.Fatalf("unexpected panic %v, want message containing %q", r, want)
		}
	}()
	fn()
}
