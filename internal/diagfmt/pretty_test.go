package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"rustlex/internal/diag"
	"rustlex/internal/diagfmt"
	"rustlex/internal/source"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.rs", []byte("let x = 0x;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexBadNumber,
		Message:  "hex literal must contain at least one digit",
		Primary:  source.Span{File: id, Start: 8, End: 11},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{Color: false})
	out := buf.String()

	if !strings.Contains(out, "bad.rs:1:9: ERROR LEX-1002: hex literal must contain at least one digit") {
		t.Errorf("missing header line in:\n%s", out)
	}
	if !strings.Contains(out, "let x = 0x;") {
		t.Errorf("missing source context in:\n%s", out)
	}
	if !strings.Contains(out, "^~~") {
		t.Errorf("missing caret underline in:\n%s", out)
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.rs", []byte("x\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexInfo,
		Message:  "something",
		Primary:  source.Span{File: id, Start: 0, End: 1},
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 0, End: 1}, Msg: "a note"}},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	out := buf.String()
	if !strings.Contains(out, "WARNING") {
		t.Errorf("missing severity in:\n%s", out)
	}
	if !strings.Contains(out, "note: a note") {
		t.Errorf("missing note in:\n%s", out)
	}
}
