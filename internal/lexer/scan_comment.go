package lexer

import (
	"rustlex/internal/token"
)

// comment drives the '/' dispatch state and every comment state. Line and
// block comments pick their doc flavor from the character right after the
// opener; one extra marker character ("too many slashes/asterisks")
// downgrades the tentative outer-doc back to a plain comment. Block comments
// nest: the kind chosen at the outermost opener is kept, nesting only moves
// the depth counter.
func (sc *Scanner) comment(c byte) bool {
	switch sc.state {
	case stSlash:
		return sc.slash(c)
	case stLineCommentStart:
		return sc.lineCommentStart(c)
	case stLineCommentMaybeOuter:
		return sc.lineCommentMaybeOuter(c)
	case stLineComment:
		return sc.lineComment(c)
	case stBlockCommentStart:
		return sc.blockCommentStart(c)
	case stBlockCommentMaybeOuter:
		return sc.blockCommentMaybeOuter(c)
	case stBlockBody:
		return sc.blockBody(c)
	case stBlockBodyStar:
		return sc.blockBodyStar(c)
	default:
		return sc.blockBodySlash(c)
	}
}

func (sc *Scanner) slash(c byte) bool {
	switch c {
	case '/':
		sc.buf = append(sc.buf, c)
		sc.state = stLineCommentStart
		return false
	case '*':
		sc.buf = append(sc.buf, c)
		sc.commentDepth = 1
		sc.commentKind = token.Comment
		sc.state = stBlockCommentStart
		return false
	case '=':
		sc.addEmpty(token.SlashEq)
		sc.state = stInitial
		return false
	default:
		sc.addEmpty(token.Slash)
		sc.state = stInitial
		return true
	}
}

func (sc *Scanner) lineCommentStart(c byte) bool {
	switch c {
	case '\n':
		sc.addWithText(token.Comment, string(sc.buf))
		sc.state = stInitial
		return true
	case '!':
		sc.buf = append(sc.buf, c)
		sc.commentKind = token.CommentInnerDoc
		sc.state = stLineComment
		return false
	case '/':
		sc.buf = append(sc.buf, c)
		sc.state = stLineCommentMaybeOuter
		return false
	default:
		sc.buf = append(sc.buf, c)
		sc.commentKind = token.Comment
		sc.state = stLineComment
		return false
	}
}

func (sc *Scanner) lineCommentMaybeOuter(c byte) bool {
	switch c {
	case '\n':
		sc.addWithText(token.CommentOuterDoc, string(sc.buf))
		sc.state = stInitial
		return true
	case '/':
		// four slashes: too many for a doc comment
		sc.buf = append(sc.buf, c)
		sc.commentKind = token.Comment
		sc.state = stLineComment
		return false
	default:
		sc.buf = append(sc.buf, c)
		sc.commentKind = token.CommentOuterDoc
		sc.state = stLineComment
		return false
	}
}

// lineComment accumulates to the terminating newline, which is excluded from
// the token text.
func (sc *Scanner) lineComment(c byte) bool {
	if c == '\n' {
		sc.addWithText(sc.commentKind, string(sc.buf))
		sc.state = stInitial
		return true
	}
	sc.buf = append(sc.buf, c)
	return false
}

func (sc *Scanner) blockCommentStart(c byte) bool {
	sc.buf = append(sc.buf, c)
	switch c {
	case '!':
		sc.commentKind = token.CommentInnerDoc
		sc.state = stBlockBody
	case '*':
		sc.state = stBlockCommentMaybeOuter
	case '/':
		// the first body character may itself start a nested opener
		sc.commentKind = token.Comment
		sc.state = stBlockBodySlash
	default:
		sc.commentKind = token.Comment
		sc.state = stBlockBody
	}
	return false
}

func (sc *Scanner) blockCommentMaybeOuter(c byte) bool {
	sc.buf = append(sc.buf, c)
	switch c {
	case '/':
		// "/**/": the tentative doc star was the closer
		sc.commentDepth--
		if sc.commentDepth == 0 {
			sc.addWithText(token.Comment, string(sc.buf))
			sc.state = stInitial
		} else {
			sc.state = stBlockBody
		}
	case '*':
		// three asterisks: too many for a doc comment
		sc.commentKind = token.Comment
		sc.state = stBlockBodyStar
	default:
		sc.commentKind = token.CommentOuterDoc
		sc.state = sc.blockBodyStateFor(c)
	}
	return false
}

func (sc *Scanner) blockBody(c byte) bool {
	sc.buf = append(sc.buf, c)
	sc.state = sc.blockBodyStateFor(c)
	return false
}

func (sc *Scanner) blockBodyStar(c byte) bool {
	sc.buf = append(sc.buf, c)
	switch c {
	case '/':
		sc.commentDepth--
		if sc.commentDepth == 0 {
			sc.addWithText(sc.commentKind, string(sc.buf))
			sc.state = stInitial
		} else {
			sc.state = stBlockBody
		}
	case '*':
		// still a candidate closer
	default:
		sc.state = stBlockBody
	}
	return false
}

func (sc *Scanner) blockBodySlash(c byte) bool {
	sc.buf = append(sc.buf, c)
	switch c {
	case '*':
		sc.commentDepth++
		sc.state = stBlockBody
	case '/':
		// still a candidate opener
	default:
		sc.state = stBlockBody
	}
	return false
}

func (sc *Scanner) blockBodyStateFor(c byte) state {
	switch c {
	case '*':
		return stBlockBodyStar
	case '/':
		return stBlockBodySlash
	default:
		return stBlockBody
	}
}
