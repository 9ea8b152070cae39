package highlight_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"rustlex/internal/driver"
	"rustlex/internal/highlight"
	"rustlex/internal/token"
)

func setColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestHighlight_PlainOutputMatchesInput(t *testing.T) {
	setColor(t, false)

	input := "fn main() {\n    let s = \"hi\"; // done\n}\n"
	result := driver.TokenizeBytes("t.rs", []byte(input), 10)

	var buf bytes.Buffer
	if err := highlight.Highlight(&buf, result.File.Content, result.Tokens, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != input {
		t.Errorf("disabled colors must reproduce the input exactly\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

func TestHighlight_EmitsEscapeCodes(t *testing.T) {
	setColor(t, true)

	input := "fn main() {}"
	result := driver.TokenizeBytes("t.rs", []byte(input), 10)

	var buf bytes.Buffer
	if err := highlight.Highlight(&buf, result.File.Content, result.Tokens, highlight.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[35m") {
		t.Errorf("expected keyword magenta escape in %q", out)
	}
	if !strings.Contains(out, "\x1b[36m") {
		t.Errorf("expected identifier cyan escape in %q", out)
	}
}

func TestHighlight_ErrorStylePersistsToNextToken(t *testing.T) {
	setColor(t, true)

	input := "0x; y"
	result := driver.TokenizeBytes("t.rs", []byte(input), 10)

	var buf bytes.Buffer
	if err := highlight.Highlight(&buf, result.File.Content, result.Tokens, highlight.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// the error background must cover the bad literal
	if !strings.Contains(out, "\x1b[41m") {
		t.Errorf("expected error background escape in %q", out)
	}
}

func TestDefaultThemeStyles(t *testing.T) {
	theme := highlight.DefaultTheme()
	if theme.Style(token.CatKeyword) == nil {
		t.Error("keyword style should be set")
	}
	if theme.Style(token.CatPlain) != nil {
		t.Error("plain category should be unstyled")
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	content := "keyword = [\"red\", \"bold\"]\ncomment = [\"hi_black\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := highlight.LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Style(token.CatKeyword) == nil {
		t.Error("keyword style missing")
	}
	// untouched categories keep defaults
	if theme.Style(token.CatStringLit) == nil {
		t.Error("string style should keep its default")
	}
}

func TestLoadTheme_UnknownCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte("nonsense = [\"red\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := highlight.LoadTheme(path); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestLoadTheme_UnknownAttribute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte("keyword = [\"sparkly\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := highlight.LoadTheme(path); err == nil {
		t.Fatal("expected error for unknown attribute")
	}
}
