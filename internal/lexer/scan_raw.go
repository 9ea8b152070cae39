package lexer

import (
	"rustlex/internal/diag"
	"rustlex/internal/token"
)

// maybeRawString resolves a leading 'r': a quote or '#' opens a raw string,
// anything else continues as an ordinary identifier.
func (sc *Scanner) maybeRawString(c byte) bool {
	switch c {
	case '"':
		sc.buf = append(sc.buf, c)
		sc.rawIsByte = false
		sc.rawOpenHashes = 0
		sc.state = stRawBody
		return false
	case '#':
		sc.buf = append(sc.buf, c)
		sc.rawIsByte = false
		sc.rawOpenHashes = 1
		sc.state = stRawOpenHashes
		return false
	default:
		sc.state = stIdentOrKeyword
		return sc.identOrKeyword(c)
	}
}

// maybeByte resolves a leading 'b': quote forms open byte literals, 'r' keeps
// the raw-byte-string option alive, anything else continues as an identifier.
func (sc *Scanner) maybeByte(c byte) bool {
	switch c {
	case '\'':
		sc.buf = append(sc.buf, c)
		sc.state = stByteLit
		sc.escape = escNone
		sc.litChars = 0
		return false
	case '"':
		sc.buf = append(sc.buf, c)
		sc.state = stByteStringLit
		sc.escape = escNone
		return false
	case 'r':
		sc.buf = append(sc.buf, c)
		sc.state = stMaybeRawByteString
		return false
	default:
		sc.state = stIdentOrKeyword
		return sc.identOrKeyword(c)
	}
}

func (sc *Scanner) maybeRawByteString(c byte) bool {
	switch c {
	case '"':
		sc.buf = append(sc.buf, c)
		sc.rawIsByte = true
		sc.rawOpenHashes = 0
		sc.state = stRawBody
		return false
	case '#':
		sc.buf = append(sc.buf, c)
		sc.rawIsByte = true
		sc.rawOpenHashes = 1
		sc.state = stRawOpenHashes
		return false
	default:
		// "br..." never opened a quote, so it is an identifier like any
		// other ("bread").
		sc.state = stIdentOrKeyword
		return sc.identOrKeyword(c)
	}
}

// rawOpen counts the '#' run of the opening delimiter.
func (sc *Scanner) rawOpen(c byte) bool {
	switch c {
	case '#':
		sc.buf = append(sc.buf, c)
		sc.rawOpenHashes++
		return false
	case '"':
		sc.buf = append(sc.buf, c)
		sc.state = stRawBody
		return false
	default:
		sc.rawOpenHashes = 0
		sc.errorAtBufStart(diag.LexBadRawString, "expected \" to begin raw string")
		sc.state = stInitial
		return true
	}
}

// rawBody accepts every byte verbatim until a quote starts a candidate
// closing delimiter.
func (sc *Scanner) rawBody(c byte) bool {
	sc.buf = append(sc.buf, c)
	if c != '"' {
		return false
	}
	if sc.rawOpenHashes == 0 {
		sc.finishRawString()
		return false
	}
	sc.rawCloseHashes = 0
	sc.state = stRawCloseHashes
	return false
}

// rawClose counts trailing '#'; the literal closes only when the run matches
// the opening count exactly. A short run is body content.
func (sc *Scanner) rawClose(c byte) bool {
	sc.buf = append(sc.buf, c)
	switch c {
	case '#':
		sc.rawCloseHashes++
		if sc.rawCloseHashes == sc.rawOpenHashes {
			sc.finishRawString()
		}
	case '"':
		// the quote may begin a fresh closing attempt
		sc.rawCloseHashes = 0
	default:
		sc.rawCloseHashes = 0
		sc.state = stRawBody
	}
	return false
}

func (sc *Scanner) finishRawString() {
	kind := token.RawStringLit
	if sc.rawIsByte {
		kind = token.RawByteStringLit
	}
	sc.addWithText(kind, string(sc.buf))
	sc.rawOpenHashes = 0
	sc.rawCloseHashes = 0
	sc.state = stInitial
}
