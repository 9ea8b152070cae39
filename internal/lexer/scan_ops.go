package lexer

import (
	"rustlex/internal/token"
)

// operator resolves the compound operators by maximal munch, one dispatch
// state per first character. Completion without a match re-offers the
// terminating character to the initial state.
func (sc *Scanner) operator(c byte) bool {
	switch sc.state {
	case stPlus:
		return sc.op1(c, '=', token.PlusEq, token.Plus)
	case stMinus:
		return sc.op2(c, '>', token.Arrow, '=', token.MinusEq, token.Minus)
	case stStar:
		return sc.op1(c, '=', token.StarEq, token.Star)
	case stPercent:
		return sc.op1(c, '=', token.PercentEq, token.Percent)
	case stCaret:
		return sc.op1(c, '=', token.CaretEq, token.Caret)
	case stBang:
		return sc.op1(c, '=', token.Ne, token.Not)
	case stAmp:
		return sc.op2(c, '&', token.AndAnd, '=', token.AmpEq, token.Amp)
	case stPipe:
		return sc.op2(c, '|', token.OrOr, '=', token.PipeEq, token.Pipe)
	case stEq:
		return sc.op2(c, '=', token.EqEq, '>', token.FatArrow, token.Eq)
	case stColon:
		return sc.op1(c, ':', token.PathSep, token.Colon)
	case stLt:
		if c == '<' {
			sc.buf = append(sc.buf, c)
			sc.state = stShl
			return false
		}
		return sc.op1(c, '=', token.Le, token.Lt)
	case stShl:
		return sc.op1(c, '=', token.ShlEq, token.Shl)
	case stGt:
		if c == '>' {
			sc.buf = append(sc.buf, c)
			sc.state = stShr
			return false
		}
		return sc.op1(c, '=', token.Ge, token.Gt)
	case stShr:
		return sc.op1(c, '=', token.ShrEq, token.Shr)
	case stDot:
		if c == '.' {
			sc.buf = append(sc.buf, c)
			sc.state = stDotDot
			return false
		}
		sc.addEmpty(token.Dot)
		sc.state = stInitial
		return true
	default: // stDotDot
		return sc.op2(c, '.', token.DotDotDot, '=', token.DotDotEq, token.DotDot)
	}
}

// op1 completes a two-character operator when c matches, otherwise emits the
// one-character form and replays c.
func (sc *Scanner) op1(c, match byte, matched, bare token.Kind) bool {
	if c == match {
		sc.addEmpty(matched)
		sc.state = stInitial
		return false
	}
	sc.addEmpty(bare)
	sc.state = stInitial
	return true
}

// op2 is op1 with two possible continuations.
func (sc *Scanner) op2(c, m1 byte, k1 token.Kind, m2 byte, k2 token.Kind, bare token.Kind) bool {
	switch c {
	case m1:
		sc.addEmpty(k1)
		sc.state = stInitial
		return false
	case m2:
		sc.addEmpty(k2)
		sc.state = stInitial
		return false
	default:
		sc.addEmpty(bare)
		sc.state = stInitial
		return true
	}
}
