package repl

import (
	"bytes"
	"strings"
	"testing"
)

func TestStartPrintsTokens(t *testing.T) {
	in := strings.NewReader("let five = 5\n")
	out := &bytes.Buffer{}

	Start(in, out)

	got := out.String()
	for _, want := range []string{
		`Kind:let, Text:"let"`,
		`Kind:identifier, Text:"five"`,
		`Kind:=, Text:"="`,
		`Kind:int, Text:"5"`,
		`Kind:end of file, Text:""`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, got)
		}
	}
}

func TestStartReturnsOnEOF(t *testing.T) {
	out := &bytes.Buffer{}

	Start(strings.NewReader(""), out)

	if got := out.String(); got != PROMPT {
		t.Errorf("expected a single prompt and no tokens, got %q", got)
	}
}
