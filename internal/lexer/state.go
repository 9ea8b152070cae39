package lexer

// state enumerates the scan positions of the FSM. The active state picks the
// handler for the next input character; handlers may complete a token and ask
// for the same character to be re-offered to the initial state.
type state uint8

const (
	stInitial state = iota

	stIdentOrUnderscore // consumed '_'
	stIdentOrKeyword

	stMaybeRawString     // consumed 'r'
	stMaybeByte          // consumed 'b'
	stMaybeRawByteString // consumed "br"

	stCharOrLifetime  // consumed '\''
	stLifetimeOrLabel // committed to a lifetime or label

	stCharLit
	stByteLit
	stStringLit
	stByteStringLit

	stRawOpenHashes // counting '#' after r / br
	stRawBody
	stRawCloseHashes // counting '#' after a '"' inside the body

	stNumberZero // consumed a leading '0', radix undecided
	stNumber     // decimal integer part
	stNumberHex
	stNumberOct
	stNumberBin
	stNumberDot      // consumed '.' after digits, not yet committed
	stNumberFrac     // digits after the decimal point
	stNumberExpSign  // consumed 'e'/'E', sign required next
	stNumberExpDigit // consumed the sign, first digit required next
	stNumberExp      // exponent digits

	stSlash                  // consumed '/'
	stLineCommentStart       // consumed "//"
	stLineCommentMaybeOuter  // consumed "///"
	stLineComment            // comment kind fixed, scanning to newline
	stBlockCommentStart      // consumed "/*"
	stBlockCommentMaybeOuter // consumed "/**"
	stBlockBody
	stBlockBodyStar  // previous body char was '*'
	stBlockBodySlash // previous body char was '/'

	stPlus
	stMinus
	stStar
	stPercent
	stCaret
	stBang
	stAmp
	stPipe
	stLt
	stShl
	stGt
	stShr
	stEq
	stColon
	stDot
	stDotDot
)

// escapeState is the literal escape-sequence sub-state.
type escapeState uint8

const (
	escNone escapeState = iota
	escSlash
	escASCIIOrByte
	escUnicode
)
