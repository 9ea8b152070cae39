package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical codes. Every Error token the scanner emits is mirrored by a
	// diagnostic carrying one of these.
	LexInfo             Code = 1000
	LexUnexpectedSymbol Code = 1001
	LexBadNumber        Code = 1002
	LexBadEscape        Code = 1003
	LexBadCharLiteral   Code = 1004
	LexBadRawString     Code = 1005
	LexNonASCIIByte     Code = 1006
)

var codeNames = map[Code]string{
	UnknownCode:         "UNKNOWN",
	LexInfo:             "LEX_INFO",
	LexUnexpectedSymbol: "LEX_UNEXPECTED_SYMBOL",
	LexBadNumber:        "LEX_BAD_NUMBER",
	LexBadEscape:        "LEX_BAD_ESCAPE",
	LexBadCharLiteral:   "LEX_BAD_CHAR_LITERAL",
	LexBadRawString:     "LEX_BAD_RAW_STRING",
	LexNonASCIIByte:     "LEX_NON_ASCII_BYTE",
}

// ID returns the stable textual identifier, e.g. "LEX-1001".
func (c Code) ID() string {
	return fmt.Sprintf("LEX-%04d", uint16(c))
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CODE(%d)", uint16(c))
}
