package token_test

import (
	"testing"

	"rustlex/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		ok    bool
	}{
		{"fn", token.KwFn, true},
		{"Self", token.KwSelfType, true},
		{"self", token.KwSelf, true},
		{"'static", token.StaticLifetime, true},
		{"union", 0, false}, // weak keyword, not in the table
		{"FN", 0, false},
		{"main", 0, false},
	}
	for _, tt := range tests {
		k, ok := token.LookupKeyword(tt.input)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q): ok=%v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && k != tt.kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.input, k, tt.kind)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !(token.Token{Kind: token.KwFn}).IsKeyword() {
		t.Error("KwFn should be a keyword")
	}
	if !(token.Token{Kind: token.KwUnion}).IsKeyword() {
		t.Error("KwUnion should be a keyword")
	}
	if (token.Token{Kind: token.Ident}).IsKeyword() {
		t.Error("Ident should not be a keyword")
	}
	if !(token.Token{Kind: token.RawByteStringLit}).IsLiteral() {
		t.Error("RawByteStringLit should be a literal")
	}
	if !(token.Token{Kind: token.FloatLit}).IsLiteral() {
		t.Error("FloatLit should be a literal")
	}
	if !(token.Token{Kind: token.CommentInnerDoc}).IsComment() {
		t.Error("CommentInnerDoc should be a comment")
	}
	if !(token.Token{Kind: token.ShlEq}).IsPunctOrOp() {
		t.Error("ShlEq should be punctuation")
	}
	if (token.Token{Kind: token.Error}).IsPunctOrOp() {
		t.Error("Error should not be punctuation")
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		kind token.Kind
		cat  token.Category
	}{
		{token.Error, token.CatError},
		{token.Ident, token.CatIdent},
		{token.KwFn, token.CatKeyword},
		{token.KwUnion, token.CatKeyword},
		{token.StaticLifetime, token.CatKeyword},
		{token.Lifetime, token.CatLifetime},
		{token.Label, token.CatLifetime},
		{token.CharLit, token.CatCharLit},
		{token.ByteLit, token.CatCharLit},
		{token.StringLit, token.CatStringLit},
		{token.RawByteStringLit, token.CatStringLit},
		{token.IntHexLit, token.CatNumber},
		{token.FloatLit, token.CatNumber},
		{token.Comment, token.CatComment},
		{token.CommentOuterDoc, token.CatComment},
		{token.Plus, token.CatPlain},
		{token.Underscore, token.CatPlain},
	}
	for _, tt := range tests {
		if got := tt.kind.Category(); got != tt.cat {
			t.Errorf("%v.Category() = %v, want %v", tt.kind, got, tt.cat)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if token.KwUnion.String() != "KwUnion" {
		t.Errorf("unexpected name %q", token.KwUnion.String())
	}
	if token.DotDotEq.String() != "DotDotEq" {
		t.Errorf("unexpected name %q", token.DotDotEq.String())
	}
	if token.Kind(255).String() != "Kind(?)" {
		t.Errorf("out-of-range kind should print Kind(?)")
	}
}
