package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"rustlex/internal/diag"
	"rustlex/internal/source"
	"rustlex/internal/token"
)

// Scanner is the character-driven FSM that turns a byte stream into tokens.
// All transient lexical state lives here; one Scanner processes exactly one
// file to completion. Malformed input never aborts the scan: it surfaces as
// Error tokens (and mirrored diagnostics) and the scanner returns to the
// initial state.
type Scanner struct {
	file *source.File
	opts Options

	state  state
	escape escapeState

	// buf accumulates the lexeme under construction; its start position is
	// recorded separately from the live cursor.
	buf     []byte
	bufLine uint32
	bufCol  uint32
	bufOff  uint32

	// escDigits counts hex digits inside \xNN and \u{...}; -1 means the
	// opening '{' of a unicode escape is still pending.
	escDigits int
	// litChars counts content characters of a char/byte literal; a second
	// one is an error.
	litChars int
	// numDigits counts digits after a radix prefix; 0x with no digit is an
	// error.
	numDigits int

	rawOpenHashes  int
	rawCloseHashes int
	rawIsByte      bool

	commentDepth int
	// commentKind is fixed by the outermost opener; nesting only changes
	// the depth, never the kind.
	commentKind token.Kind

	// exponent / trailing-dot bookkeeping for numeric literals
	expChar byte
	expSign byte
	expLine uint32
	expCol  uint32
	expOff  uint32
	dotLine uint32
	dotCol  uint32

	line uint32
	col  uint32
	off  uint32

	tokens []token.Token
}

// New creates a Scanner over the given file.
func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:  file,
		opts:  opts,
		state: stInitial,
	}
}

// Scan runs the FSM over the whole input and returns the ordered token
// sequence. If the input does not end with a newline, one is fed synthetically
// so that line comments and pending lexemes close. Scan is total: it
// terminates for every finite input and never fails.
func Scan(file *source.File, opts Options) []token.Token {
	return New(file, opts).Scan()
}

// Scan consumes the input once and returns the token sequence.
func (sc *Scanner) Scan() []token.Token {
	content := sc.file.Content
	for _, c := range content {
		sc.step(c)
	}
	if len(content) == 0 || content[len(content)-1] != '\n' {
		sc.step('\n')
	}
	return sc.tokens
}

// step processes exactly one character. A handler that completes a token
// re-offers the same character to the next state; the loop is bounded because
// each re-dispatch either consumes the character or moves to a state that
// will.
func (sc *Scanner) step(c byte) {
	for sc.dispatch(c) {
	}
	if c == '\n' {
		sc.line++
		sc.col = 0
	} else {
		sc.col++
	}
	sc.off++
}

// dispatch routes the character to the handler of the active state.
// The returned bool requests a re-dispatch of the same character.
func (sc *Scanner) dispatch(c byte) bool {
	switch sc.state {
	case stInitial:
		return sc.initialState(c)
	case stIdentOrUnderscore:
		return sc.identOrUnderscore(c)
	case stIdentOrKeyword:
		return sc.identOrKeyword(c)
	case stMaybeRawString:
		return sc.maybeRawString(c)
	case stMaybeByte:
		return sc.maybeByte(c)
	case stMaybeRawByteString:
		return sc.maybeRawByteString(c)
	case stCharOrLifetime:
		return sc.charOrLifetime(c)
	case stLifetimeOrLabel:
		return sc.lifetimeOrLabel(c)
	case stCharLit, stByteLit, stStringLit, stByteStringLit:
		return sc.stringLike(c)
	case stRawOpenHashes:
		return sc.rawOpen(c)
	case stRawBody:
		return sc.rawBody(c)
	case stRawCloseHashes:
		return sc.rawClose(c)
	case stNumberZero, stNumber, stNumberHex, stNumberOct, stNumberBin,
		stNumberDot, stNumberFrac, stNumberExpSign, stNumberExpDigit, stNumberExp:
		return sc.number(c)
	case stSlash, stLineCommentStart, stLineCommentMaybeOuter, stLineComment,
		stBlockCommentStart, stBlockCommentMaybeOuter,
		stBlockBody, stBlockBodyStar, stBlockBodySlash:
		return sc.comment(c)
	default:
		return sc.operator(c)
	}
}

// initialState classifies the first character of a new lexeme. It never asks
// for a re-dispatch.
func (sc *Scanner) initialState(c byte) bool {
	switch {
	case c == 'r':
		sc.startBuffer(c, stMaybeRawString)
	case c == 'b':
		sc.startBuffer(c, stMaybeByte)
	case c == '_':
		sc.startBuffer(c, stIdentOrUnderscore)
	case isLetter(c):
		sc.startBuffer(c, stIdentOrKeyword)
	case c == '0':
		sc.startBuffer(c, stNumberZero)
	case isDec(c):
		sc.startBuffer(c, stNumber)
	case c == '"':
		sc.startBuffer(c, stStringLit)
		sc.escape = escNone
	case c == '\'':
		sc.startBuffer(c, stCharOrLifetime)
	case c == '/':
		sc.startBuffer(c, stSlash)

	case c == '+':
		sc.startBuffer(c, stPlus)
	case c == '-':
		sc.startBuffer(c, stMinus)
	case c == '*':
		sc.startBuffer(c, stStar)
	case c == '%':
		sc.startBuffer(c, stPercent)
	case c == '^':
		sc.startBuffer(c, stCaret)
	case c == '!':
		sc.startBuffer(c, stBang)
	case c == '&':
		sc.startBuffer(c, stAmp)
	case c == '|':
		sc.startBuffer(c, stPipe)
	case c == '<':
		sc.startBuffer(c, stLt)
	case c == '>':
		sc.startBuffer(c, stGt)
	case c == '=':
		sc.startBuffer(c, stEq)
	case c == ':':
		sc.startBuffer(c, stColon)
	case c == '.':
		sc.startBuffer(c, stDot)

	// single-character punctuation with no compound form
	case c == '@':
		sc.addAtCursor(token.At)
	case c == ',':
		sc.addAtCursor(token.Comma)
	case c == ';':
		sc.addAtCursor(token.Semicolon)
	case c == '#':
		sc.addAtCursor(token.Pound)
	case c == '$':
		sc.addAtCursor(token.Dollar)
	case c == '?':
		sc.addAtCursor(token.Question)
	case c == '(':
		sc.addAtCursor(token.LParen)
	case c == ')':
		sc.addAtCursor(token.RParen)
	case c == '[':
		sc.addAtCursor(token.LBracket)
	case c == ']':
		sc.addAtCursor(token.RBracket)
	case c == '{':
		sc.addAtCursor(token.LBrace)
	case c == '}':
		sc.addAtCursor(token.RBrace)

	case isWhitespace(c):
		// skip
	default:
		sc.errorAtCursor(diag.LexUnexpectedSymbol, "unexpected symbol")
	}
	return false
}

// startBuffer begins a new lexeme with c as its first character and resets
// every per-lexeme sub-state.
func (sc *Scanner) startBuffer(c byte, st state) {
	sc.buf = append(sc.buf[:0], c)
	sc.bufLine = sc.line
	sc.bufCol = sc.col
	sc.bufOff = sc.off
	sc.state = st
	sc.escape = escNone
	sc.escDigits = 0
	sc.litChars = 0
	sc.numDigits = 0
	sc.rawOpenHashes = 0
	sc.rawCloseHashes = 0
	sc.rawIsByte = false
	sc.commentDepth = 0
}

func (sc *Scanner) addEmpty(k token.Kind) {
	sc.tokens = append(sc.tokens, token.Token{Line: sc.bufLine, Col: sc.bufCol, Kind: k})
}

func (sc *Scanner) addWithText(k token.Kind, text string) {
	sc.tokens = append(sc.tokens, token.Token{Line: sc.bufLine, Col: sc.bufCol, Kind: k, Text: text})
}

// addAtCursor emits a token for the character under the cursor, bypassing the
// buffer entirely.
func (sc *Scanner) addAtCursor(k token.Kind) {
	sc.tokens = append(sc.tokens, token.Token{Line: sc.line, Col: sc.col, Kind: k})
}

// errorAtBufStart emits an Error token positioned where the enclosing lexeme
// began and mirrors it to the diagnostics reporter.
func (sc *Scanner) errorAtBufStart(code diag.Code, msg string) {
	sc.emitError(code, msg, sc.bufLine, sc.bufCol, sc.bufOff)
}

// errorAtCursor emits an Error token positioned at the offending character.
func (sc *Scanner) errorAtCursor(code diag.Code, msg string) {
	sc.emitError(code, msg, sc.line, sc.col, sc.off)
}

func (sc *Scanner) emitError(code diag.Code, msg string, line, col, start uint32) {
	sc.tokens = append(sc.tokens, token.Token{Line: line, Col: col, Kind: token.Error, Text: msg})
	if sc.opts.Reporter != nil {
		end := sc.off + 1
		if limit := sc.contentLen(); end > limit {
			end = limit
		}
		if start > end {
			start = end
		}
		span := source.Span{File: sc.file.ID, Start: start, End: end}
		sc.opts.Reporter.Report(code, diag.SevError, span, msg, nil)
	}
}

func (sc *Scanner) contentLen() uint32 {
	n, err := safecast.Conv[uint32](len(sc.file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

// internText returns a canonical copy of the buffer, shared through the
// interner when one is configured.
func (sc *Scanner) internText() string {
	if sc.opts.Interner != nil {
		id := sc.opts.Interner.InternBytes(sc.buf)
		if s, ok := sc.opts.Interner.Lookup(id); ok {
			return s
		}
	}
	return string(sc.buf)
}
