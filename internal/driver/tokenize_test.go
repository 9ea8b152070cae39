package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"rustlex/internal/driver"
	"rustlex/internal/token"
)

func TestTokenizeBytes(t *testing.T) {
	result := driver.TokenizeBytes("mem.rs", []byte("let x = 1;"), 10)
	kinds := []token.Kind{token.KwLet, token.Ident, token.Eq, token.IntDecLit, token.Semicolon}
	if len(result.Tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d", len(kinds), len(result.Tokens))
	}
	for i, k := range kinds {
		if result.Tokens[i].Kind != k {
			t.Errorf("token %d: expected %v, got %v", i, k, result.Tokens[i].Kind)
		}
	}
	if result.Bag.HasErrors() {
		t.Error("clean input should not produce diagnostics")
	}
}

func TestTokenizeBytes_CollectsDiagnostics(t *testing.T) {
	result := driver.TokenizeBytes("bad.rs", []byte("0x;"), 10)
	if !result.Bag.HasErrors() {
		t.Fatal("expected diagnostics")
	}
	if result.Tokens[0].Kind != token.Error {
		t.Errorf("expected leading Error token, got %v", result.Tokens[0].Kind)
	}
}

func TestTokenizeBytes_DiagnosticLimit(t *testing.T) {
	result := driver.TokenizeBytes("bad.rs", []byte("` ` ` `"), 2)
	if result.Bag.Len() != 2 {
		t.Errorf("expected the bag to cap at 2 diagnostics, got %d", result.Bag.Len())
	}
	// every error still surfaces as a token
	if len(result.Tokens) != 4 {
		t.Errorf("expected 4 Error tokens, got %d", len(result.Tokens))
	}
}

func TestTokenize_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rs")
	if err := os.WriteFile(path, []byte("fn main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := driver.Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Tokens) != 6 {
		t.Errorf("expected 6 tokens, got %d", len(result.Tokens))
	}
}

func TestTokenize_MissingFile(t *testing.T) {
	if _, err := driver.Tokenize(filepath.Join(t.TempDir(), "nope.rs"), 10); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTokenizeAll_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	inputs := map[string]string{
		"a.rs": "let a;",
		"b.rs": "let b;",
		"c.rs": "let c;",
	}
	paths := make([]string, 0, len(inputs))
	for _, name := range []string{"a.rs", "b.rs", "c.rs"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(inputs[name]), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	results, err := driver.TokenizeAll(paths, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	wantIdents := []string{"a", "b", "c"}
	for i, res := range results {
		if res.Tokens[1].Text != wantIdents[i] {
			t.Errorf("result %d: expected ident %q, got %q", i, wantIdents[i], res.Tokens[1].Text)
		}
	}
}

func TestTokenizeAll_LoadErrorAborts(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ok.rs")
	if err := os.WriteFile(good, []byte("ok"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := driver.TokenizeAll([]string{good, filepath.Join(dir, "gone.rs")}, 10); err == nil {
		t.Fatal("expected error for missing file in batch")
	}
}
