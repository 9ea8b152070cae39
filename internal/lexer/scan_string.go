package lexer

import (
	"rustlex/internal/diag"
	"rustlex/internal/token"
)

// charOrLifetime disambiguates a leading '\'': it may begin a char literal
// ('x', '\n'), a lifetime ('a), or a label ('outer:). The decision uses only
// the buffer length and the character class of the next input.
func (sc *Scanner) charOrLifetime(c byte) bool {
	if len(sc.buf) == 1 {
		switch {
		case c == '\\':
			sc.buf = append(sc.buf, c)
			sc.state = stCharLit
			sc.escape = escSlash
			sc.litChars = 0
		case c == '\'':
			sc.buf = append(sc.buf, c)
			sc.errorAtBufStart(diag.LexBadCharLiteral, "empty char literal")
			sc.state = stInitial
		case isIdentChar(c):
			sc.buf = append(sc.buf, c)
		default:
			sc.buf = append(sc.buf, c)
			sc.errorAtBufStart(diag.LexBadCharLiteral, "expected char literal, lifetime, or label")
			sc.state = stInitial
		}
		return false
	}

	// buffer is '" + one identifier character
	if c == '\'' {
		sc.buf = append(sc.buf, c)
		sc.addWithText(token.CharLit, string(sc.buf))
		sc.state = stInitial
		return false
	}
	sc.state = stLifetimeOrLabel
	return true
}

// lifetimeOrLabel accumulates the identifier run after '\''. A ':' completes
// a label; any other terminator completes a lifetime, with the spelling
// 'static mapped to its own kind through the keyword table.
func (sc *Scanner) lifetimeOrLabel(c byte) bool {
	if isIdentChar(c) {
		sc.buf = append(sc.buf, c)
		return false
	}
	if c == ':' {
		sc.buf = append(sc.buf, c)
		sc.addWithText(token.Label, string(sc.buf))
		sc.state = stInitial
		return false
	}

	text := string(sc.buf)
	if k, ok := token.LookupKeyword(text); ok {
		sc.addEmpty(k) // 'static
	} else {
		sc.addWithText(token.Lifetime, text)
	}
	sc.state = stInitial
	return true
}

// stringLike drives char, byte, string and byte-string literal bodies through
// the escape sub-state machine.
func (sc *Scanner) stringLike(c byte) bool {
	switch sc.escape {
	case escNone:
		return sc.escapeNone(c)
	case escSlash:
		return sc.escapeSlash(c)
	case escASCIIOrByte:
		return sc.escapeASCIIOrByte(c)
	default:
		return sc.escapeUnicode(c)
	}
}

func (sc *Scanner) isByteContext() bool {
	return sc.state == stByteLit || sc.state == stByteStringLit
}

func (sc *Scanner) isCharContext() bool {
	return sc.state == stCharLit || sc.state == stByteLit
}

func (sc *Scanner) escapeNone(c byte) bool {
	if sc.isByteContext() && c >= 0x80 {
		sc.buf = append(sc.buf, c)
		sc.errorAtBufStart(diag.LexNonASCIIByte, "byte constant must be ASCII")
		sc.state = stInitial
		return false
	}

	sc.buf = append(sc.buf, c)
	switch {
	case c == '\'' && sc.isCharContext():
		kind := token.CharLit
		if sc.state == stByteLit {
			kind = token.ByteLit
		}
		sc.addWithText(kind, string(sc.buf))
		sc.state = stInitial
	case c == '"' && !sc.isCharContext():
		kind := token.StringLit
		if sc.state == stByteStringLit {
			kind = token.ByteStringLit
		}
		sc.addWithText(kind, string(sc.buf))
		sc.state = stInitial
	case c == '\\':
		sc.escape = escSlash
	default:
		if sc.isCharContext() {
			if sc.litChars >= 1 {
				sc.errorAtBufStart(diag.LexBadCharLiteral, "did not expect more than one character")
				sc.state = stInitial
				return false
			}
			sc.litChars++
		}
	}
	return false
}

func (sc *Scanner) escapeSlash(c byte) bool {
	sc.buf = append(sc.buf, c)
	switch c {
	case '\'', '"', 'n', 'r', 't', '\\', '0':
		sc.escape = escNone
		if sc.isCharContext() {
			sc.litChars++
		}
	case '\n':
		if sc.state == stStringLit {
			// line continuation
			sc.escape = escNone
		} else {
			sc.escape = escNone
			sc.state = stInitial
			sc.errorAtBufStart(diag.LexBadEscape, "backslash before newline is only allowed in string literals")
		}
	case 'x':
		sc.escape = escASCIIOrByte
		sc.escDigits = 0
	case 'u':
		if sc.isByteContext() {
			sc.escape = escNone
			sc.state = stInitial
			sc.errorAtBufStart(diag.LexBadEscape, "unicode escapes not allowed in byte strings")
		} else {
			sc.escape = escUnicode
			sc.escDigits = -1
		}
	default:
		// Unrecognized escape characters are consumed without leaving the
		// escape sub-state; the literal stays open.
	}
	return false
}

// escapeASCIIOrByte expects exactly two hex digits after \x. In non-byte
// contexts the first digit is capped at '7' because code points above 0x7F
// cannot appear in a plain char or string escape.
func (sc *Scanner) escapeASCIIOrByte(c byte) bool {
	sc.buf = append(sc.buf, c)
	if sc.escDigits == 0 {
		switch {
		case !isHex(c):
			sc.escape = escNone
			sc.state = stInitial
			sc.errorAtBufStart(diag.LexBadEscape, "unexpected symbol in hex character code")
		case !sc.isByteContext() && c > '7':
			sc.escape = escNone
			sc.state = stInitial
			sc.errorAtBufStart(diag.LexBadEscape, "ascii escape code must be at most 0x7F")
		default:
			sc.escDigits = 1
		}
		return false
	}

	if !isHex(c) {
		sc.escape = escNone
		sc.state = stInitial
		sc.errorAtBufStart(diag.LexBadEscape, "unexpected symbol in hex character code")
		return false
	}
	sc.escape = escNone
	sc.escDigits = 0
	if sc.isCharContext() {
		sc.litChars++
	}
	return false
}

// escapeUnicode handles \u{NNNNNN}: an opening brace, at most six hex digits,
// and a closing brace.
func (sc *Scanner) escapeUnicode(c byte) bool {
	sc.buf = append(sc.buf, c)
	if sc.escDigits == -1 {
		if c == '{' {
			sc.escDigits = 0
		} else {
			sc.escape = escNone
			sc.state = stInitial
			sc.errorAtBufStart(diag.LexBadEscape, "unicode escape sequence must start with {")
		}
		return false
	}

	switch {
	case isHex(c):
		sc.escDigits++
		if sc.escDigits > 6 {
			sc.escape = escNone
			sc.state = stInitial
			sc.errorAtBufStart(diag.LexBadEscape, "too many digits in unicode escape sequence")
		}
	case c == '}':
		sc.escape = escNone
		sc.escDigits = 0
		if sc.isCharContext() {
			sc.litChars++
		}
	default:
		sc.escape = escNone
		sc.state = stInitial
		sc.errorAtBufStart(diag.LexBadEscape, "unexpected symbol in hex character code")
	}
	return false
}
