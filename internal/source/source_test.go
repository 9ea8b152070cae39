package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Fatal("expected change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("got %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Error("expected no change")
	}
	if string(out) != "plain\n" {
		t.Errorf("got %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte("\xEF\xBB\xBFx"))
	if !had || string(out) != "x" {
		t.Errorf("got %q, had=%v", out, had)
	}
	out, had = removeBOM([]byte("xy"))
	if had || string(out) != "xy" {
		t.Errorf("got %q, had=%v", out, had)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nfg")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},  // 'a'
		{1, 1, 2},  // 'b'
		{2, 1, 3},  // first newline belongs to line 1
		{3, 2, 1},  // 'c'
		{5, 2, 3},  // newline after "cd"
		{6, 3, 1},  // empty line
		{7, 4, 1},  // 'f'
		{8, 4, 2},  // 'g'
	}
	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d", tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}
}

func TestResolveSpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.rs", []byte("let x\nlet y\n"))
	start, end := fs.Resolve(Span{File: id, Start: 6, End: 9})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %d:%d, want 2:4", end.Line, end.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.rs", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	tests := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.num); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	c := in.Intern("bar")
	if a != b {
		t.Error("same string should intern to the same id")
	}
	if a == c {
		t.Error("different strings should get different ids")
	}
	if s, ok := in.Lookup(a); !ok || s != "foo" {
		t.Errorf("Lookup(%d) = %q, %v", a, s, ok)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("out-of-range id should not resolve")
	}
	if in.Len() != 3 { // "", "foo", "bar"
		t.Errorf("Len() = %d, want 3", in.Len())
	}
}
