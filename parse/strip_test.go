package parse

import (
	"strings"
	"testing"
)

func TestStripComments(t *testing.T) {
	in := `
plugins {
    id "java" // apply Java plugin
} // end of plugins
`
	got := StripComments(in)
	if strings.Contains(got, "//") {
		t.Errorf("comment survived: %q", got)
	}
	if !strings.Contains(got, `id "java"`) {
		t.Errorf("code stripped: %q", got)
	}
	if strings.Contains(got, "\n\n") {
		t.Errorf("blank line survived: %q", got)
	}
}

func TestStripCommentsQuoteAware(t *testing.T) {
	got := StripComments(`url "https://example.com/path" // trailing`)
	if got != `url "https://example.com/path"` {
		t.Errorf("got %q", got)
	}
	got = StripComments(`url 'https://example.com'`)
	if got != `url 'https://example.com'` {
		t.Errorf("got %q", got)
	}
}

func TestStripCommentsWholeLine(t *testing.T) {
	got := StripComments("// all comment\nkey \"v\"\n")
	if got != `key "v"` {
		t.Errorf("got %q", got)
	}
}
