package token

// Token represents a single source token. Line and Col are 0-based and point
// at the first character of the lexeme. Text is populated for identifiers,
// literals, comments, lifetimes and labels; for Error tokens it carries the
// diagnostic message. Keywords and fixed-spelling punctuation leave it empty.
type Token struct {
	Line uint32
	Col  uint32
	Kind Kind
	Text string
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAs && t.Kind <= KwUnion
}

// IsLiteral reports whether the token is a char, string or numeric literal.
func (t Token) IsLiteral() bool {
	return t.Kind >= CharLit && t.Kind <= FloatLit
}

// IsComment reports whether the token is a comment of any flavor.
func (t Token) IsComment() bool {
	return t.Kind == Comment || t.Kind == CommentInnerDoc || t.Kind == CommentOuterDoc
}

// IsPunctOrOp reports whether the token is an operator or punctuation mark.
func (t Token) IsPunctOrOp() bool {
	return t.Kind == Underscore || (t.Kind >= Plus && t.Kind < kindCount)
}

// Category groups kinds for styling purposes (see internal/highlight).
type Category uint8

const (
	CatPlain Category = iota
	CatKeyword
	CatIdent
	CatComment
	CatLifetime
	CatCharLit
	CatStringLit
	CatNumber
	CatError
)

var categoryNames = [...]string{
	CatPlain:     "plain",
	CatKeyword:   "keyword",
	CatIdent:     "identifier",
	CatComment:   "comment",
	CatLifetime:  "lifetime",
	CatCharLit:   "char",
	CatStringLit: "string",
	CatNumber:    "number",
	CatError:     "error",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// Category returns the styling group of the kind. StaticLifetime styles as a
// keyword, not as a lifetime.
func (k Kind) Category() Category {
	switch {
	case k == Error:
		return CatError
	case k == Ident:
		return CatIdent
	case k == StaticLifetime || (k >= KwAs && k <= KwUnion):
		return CatKeyword
	case k == Lifetime || k == Label:
		return CatLifetime
	case k == CharLit || k == ByteLit:
		return CatCharLit
	case k >= StringLit && k <= RawByteStringLit:
		return CatStringLit
	case k >= IntDecLit && k <= FloatLit:
		return CatNumber
	case k == Comment || k == CommentInnerDoc || k == CommentOuterDoc:
		return CatComment
	default:
		return CatPlain
	}
}
