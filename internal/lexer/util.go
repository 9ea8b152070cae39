package lexer

// Only ASCII letters, digits and '_' are identifier characters; the input is
// a stream of 8-bit code units and is never decoded.
func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentChar(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isOct admits '8'; consumers only look at the literal kind, never the
// digit value.
func isOct(b byte) bool { return b >= '0' && b <= '8' }

func isBin(b byte) bool { return b == '0' || b == '1' }

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
