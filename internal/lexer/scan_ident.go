package lexer

import (
	"rustlex/internal/token"
)

// identOrUnderscore resolves a leading '_': one more identifier character
// makes it an identifier, anything else a bare Underscore token.
func (sc *Scanner) identOrUnderscore(c byte) bool {
	if isIdentChar(c) {
		sc.buf = append(sc.buf, c)
		sc.state = stIdentOrKeyword
		return false
	}
	sc.addEmpty(token.Underscore)
	sc.state = stInitial
	return true
}

// identOrKeyword accumulates identifier characters; the terminating character
// completes the lexeme and is re-offered to the initial state.
func (sc *Scanner) identOrKeyword(c byte) bool {
	if isIdentChar(c) {
		sc.buf = append(sc.buf, c)
		return false
	}
	sc.completeIdent()
	sc.state = stInitial
	return true
}

// completeIdent finishes an identifier-shaped lexeme: the previously emitted
// token is first checked for weak-keyword reclassification, then the buffer
// is looked up in the keyword table.
func (sc *Scanner) completeIdent() {
	sc.reclassifyWeakUnion()

	text := string(sc.buf)
	if k, ok := token.LookupKeyword(text); ok {
		sc.addEmpty(k)
		return
	}
	sc.addWithText(token.Ident, sc.internText())
}

// reclassifyWeakUnion rewrites the most recently appended token in place when
// it is an identifier spelled exactly "union". The check is deliberately
// context-free: a lexer cannot know whether the word sits in declaration
// position, so every identifier boundary triggers it.
func (sc *Scanner) reclassifyWeakUnion() {
	if len(sc.tokens) == 0 {
		return
	}
	last := &sc.tokens[len(sc.tokens)-1]
	if last.Kind == token.Ident && last.Text == "union" {
		last.Kind = token.KwUnion
		last.Text = ""
	}
}
