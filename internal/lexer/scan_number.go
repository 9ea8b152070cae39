package lexer

import (
	"rustlex/internal/diag"
	"rustlex/internal/token"
)

// number drives every numeric-literal state. Decimal literals may grow a
// fraction via '.' and an exponent via 'e'/'E'; the exponent requires an
// explicit sign and at least one digit. Radix literals require at least one
// digit after the prefix. No type suffix is parsed: the literal ends at the
// first character outside its digit class.
func (sc *Scanner) number(c byte) bool {
	switch sc.state {
	case stNumberZero:
		return sc.numberZero(c)
	case stNumber:
		return sc.numberDec(c)
	case stNumberHex:
		return sc.numberRadix(c, isHex, token.IntHexLit, "hex literal must contain at least one digit")
	case stNumberOct:
		return sc.numberRadix(c, isOct, token.IntOctLit, "octal literal must contain at least one digit")
	case stNumberBin:
		return sc.numberRadix(c, isBin, token.IntBinLit, "binary literal must contain at least one digit")
	case stNumberDot:
		return sc.numberDot(c)
	case stNumberFrac:
		return sc.numberFrac(c)
	case stNumberExpSign:
		return sc.numberExpSign(c)
	case stNumberExpDigit:
		return sc.numberExpDigit(c)
	default:
		return sc.numberExp(c)
	}
}

// numberZero decides the radix after a leading '0'.
func (sc *Scanner) numberZero(c byte) bool {
	switch {
	case c == 'x':
		sc.buf = append(sc.buf, c)
		sc.state = stNumberHex
		return false
	case c == 'o':
		sc.buf = append(sc.buf, c)
		sc.state = stNumberOct
		return false
	case c == 'b':
		sc.buf = append(sc.buf, c)
		sc.state = stNumberBin
		return false
	default:
		sc.state = stNumber
		return sc.numberDec(c)
	}
}

func (sc *Scanner) numberDec(c byte) bool {
	switch {
	case isDec(c) || c == '_':
		sc.buf = append(sc.buf, c)
		return false
	case c == '.':
		// not committed yet: ".." after digits must stay a range operator
		sc.dotLine = sc.line
		sc.dotCol = sc.col
		sc.state = stNumberDot
		return false
	case c == 'e' || c == 'E':
		sc.beginExponent(c)
		return false
	default:
		sc.addWithText(token.IntDecLit, string(sc.buf))
		sc.state = stInitial
		return true
	}
}

// numberRadix scans hex/octal/binary digits after a 0x/0o/0b prefix. digitOK
// encodes the radix character class (octal deliberately admits '8').
func (sc *Scanner) numberRadix(c byte, digitOK func(byte) bool, kind token.Kind, emptyMsg string) bool {
	if digitOK(c) {
		sc.buf = append(sc.buf, c)
		sc.numDigits++
		return false
	}
	if c == '_' {
		sc.buf = append(sc.buf, c)
		return false
	}
	if sc.numDigits == 0 {
		sc.errorAtBufStart(diag.LexBadNumber, emptyMsg)
		sc.state = stInitial
		return true
	}
	sc.addWithText(kind, string(sc.buf))
	sc.state = stInitial
	return true
}

// numberDot resolves a '.' seen after the integer part: a digit commits the
// dot to a fraction, anything else completes the integer and replays the dot
// as punctuation (so 1..2 lexes as IntDec DotDot IntDec).
func (sc *Scanner) numberDot(c byte) bool {
	if isDec(c) {
		sc.buf = append(sc.buf, '.', c)
		sc.state = stNumberFrac
		return false
	}

	sc.addWithText(token.IntDecLit, string(sc.buf))
	sc.buf = append(sc.buf[:0], '.')
	sc.bufLine = sc.dotLine
	sc.bufCol = sc.dotCol
	sc.bufOff = sc.off - 1
	sc.state = stDot
	return true
}

func (sc *Scanner) numberFrac(c byte) bool {
	switch {
	case isDec(c) || c == '_':
		sc.buf = append(sc.buf, c)
		return false
	case c == 'e' || c == 'E':
		sc.beginExponent(c)
		return false
	default:
		sc.addWithText(token.FloatLit, string(sc.buf))
		sc.state = stInitial
		return true
	}
}

// beginExponent records the exponent marker without committing it to the
// buffer: if the sign or first digit never arrives, the number token must
// end before the marker.
func (sc *Scanner) beginExponent(c byte) {
	sc.expChar = c
	sc.expLine = sc.line
	sc.expCol = sc.col
	sc.expOff = sc.off
	sc.state = stNumberExpSign
}

func (sc *Scanner) numberExpSign(c byte) bool {
	if c == '+' || c == '-' {
		sc.expSign = c
		sc.state = stNumberExpDigit
		return false
	}
	sc.emitNumberBeforeExponent()
	sc.emitError(diag.LexBadNumber, "expected + or - at start of exponent", sc.expLine, sc.expCol, sc.expOff)
	sc.state = stInitial
	return true
}

func (sc *Scanner) numberExpDigit(c byte) bool {
	if isDec(c) {
		sc.buf = append(sc.buf, sc.expChar, sc.expSign, c)
		sc.state = stNumberExp
		return false
	}
	sc.emitNumberBeforeExponent()
	sc.emitError(diag.LexBadNumber, "exponent should have at least one digit", sc.expLine, sc.expCol, sc.expOff)
	sc.state = stInitial
	return true
}

func (sc *Scanner) numberExp(c byte) bool {
	if isDec(c) || c == '_' {
		sc.buf = append(sc.buf, c)
		return false
	}
	sc.addWithText(token.FloatLit, string(sc.buf))
	sc.state = stInitial
	return true
}

// emitNumberBeforeExponent completes the literal accumulated before a
// malformed exponent: float when a fraction was committed, decimal int
// otherwise.
func (sc *Scanner) emitNumberBeforeExponent() {
	kind := token.IntDecLit
	for _, b := range sc.buf {
		if b == '.' {
			kind = token.FloatLit
			break
		}
	}
	sc.addWithText(kind, string(sc.buf))
}
