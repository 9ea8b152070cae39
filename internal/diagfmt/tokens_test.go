package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"rustlex/internal/diagfmt"
	"rustlex/internal/token"
)

var sampleTokens = []token.Token{
	{Line: 0, Col: 0, Kind: token.KwLet},
	{Line: 0, Col: 4, Kind: token.Ident, Text: "x"},
	{Line: 0, Col: 6, Kind: token.Eq},
	{Line: 0, Col: 8, Kind: token.IntDecLit, Text: "1"},
	{Line: 0, Col: 9, Kind: token.Semicolon},
}

func TestFormatTokensPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, sampleTokens); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(sampleTokens) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(sampleTokens), len(lines), out)
	}
	if !strings.Contains(lines[0], "KwLet") || !strings.Contains(lines[0], "at 0:0") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], `"x"`) || !strings.Contains(lines[1], "at 0:4") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, sampleTokens); err != nil {
		t.Fatal(err)
	}

	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	expected := []diagfmt.TokenOutput{
		{Kind: "KwLet", Line: 0, Col: 0},
		{Kind: "Ident", Text: "x", Line: 0, Col: 4},
		{Kind: "Eq", Line: 0, Col: 6},
		{Kind: "IntDecLit", Text: "1", Line: 0, Col: 8},
		{Kind: "Semicolon", Line: 0, Col: 9},
	}
	if diff := cmp.Diff(expected, decoded); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatTokensMsgpack(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensMsgpack(&buf, sampleTokens); err != nil {
		t.Fatal(err)
	}

	var decoded []diagfmt.TokenOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(sampleTokens) {
		t.Fatalf("expected %d entries, got %d", len(sampleTokens), len(decoded))
	}
	if decoded[1].Kind != "Ident" || decoded[1].Text != "x" {
		t.Errorf("entry 1 = %+v", decoded[1])
	}
}
