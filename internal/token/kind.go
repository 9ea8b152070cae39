package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Error indicates a lexical error; Token.Text carries the diagnostic
	// message instead of source text.
	Error Kind = iota

	// Ident represents an identifier token.
	Ident
	// Underscore represents a bare '_' token.
	Underscore

	// Keywords. Keyword tokens carry no text; the spelling is implied.

	KwAs       // as
	KwBreak    // break
	KwConst    // const
	KwContinue // continue
	KwCrate    // crate
	KwElse     // else
	KwEnum     // enum
	KwExtern   // extern
	KwFalse    // false
	KwFn       // fn
	KwFor      // for
	KwIf       // if
	KwImpl     // impl
	KwIn       // in
	KwLet      // let
	KwLoop     // loop
	KwMatch    // match
	KwMod      // mod
	KwMove     // move
	KwMut      // mut
	KwPub      // pub
	KwRef      // ref
	KwReturn   // return
	KwSelf     // self
	KwSelfType // Self
	KwStatic   // static
	KwStruct   // struct
	KwSuper    // super
	KwTrait    // trait
	KwTrue     // true
	KwType     // type
	KwUnsafe   // unsafe
	KwUse      // use
	KwWhere    // where
	KwWhile    // while
	KwAsync    // async
	KwAwait    // await
	KwDyn      // dyn
	KwAbstract // abstract
	KwBecome   // become
	KwBox      // box
	KwDo       // do
	KwFinal    // final
	KwMacro    // macro
	KwOverride // override
	KwPriv     // priv
	KwTypeof   // typeof
	KwUnsized  // unsized
	KwVirtual  // virtual
	KwYield    // yield
	KwTry      // try
	// KwUnion is the weak keyword 'union'. The scanner first emits it as an
	// Ident and reclassifies it retroactively on the next identifier-shaped
	// token boundary.
	KwUnion // union

	// Lifetime represents a lifetime parameter such as 'a.
	Lifetime
	// StaticLifetime represents the 'static lifetime specifically.
	StaticLifetime
	// Label represents a loop label such as 'outer:.
	Label

	// Literals. Text holds the exact source spelling including delimiters.

	CharLit          // 'x'
	ByteLit          // b'x'
	StringLit        // "..."
	ByteStringLit    // b"..."
	RawStringLit     // r"..." / r#"..."#
	RawByteStringLit // br"..." / br#"..."#
	IntDecLit
	IntHexLit
	IntOctLit
	IntBinLit
	FloatLit

	// Comment is a plain // or /* */ comment; the doc variants share the
	// same kinds between the line and block forms.
	Comment
	CommentInnerDoc // //! or /*!
	CommentOuterDoc // /// or /**

	// Operators and punctuation.

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Caret     // ^
	Not       // !
	Amp       // &
	Pipe      // |
	AndAnd    // &&
	OrOr      // ||
	Shl       // <<
	Shr       // >>
	PlusEq    // +=
	MinusEq   // -=
	StarEq    // *=
	SlashEq   // /=
	PercentEq // %=
	CaretEq   // ^=
	AmpEq     // &=
	PipeEq    // |=
	ShlEq     // <<=
	ShrEq     // >>=
	Eq        // =
	EqEq      // ==
	Ne        // !=
	Gt        // >
	Lt        // <
	Ge        // >=
	Le        // <=
	At        // @
	Dot       // .
	DotDot    // ..
	DotDotDot // ...
	DotDotEq  // ..=
	Comma     // ,
	Semicolon // ;
	Colon     // :
	PathSep   // ::
	Arrow     // ->
	FatArrow  // =>
	Pound     // #
	Dollar    // $
	Question  // ?
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }

	kindCount
)

var kindNames = [...]string{
	Error:      "Error",
	Ident:      "Ident",
	Underscore: "Underscore",

	KwAs: "KwAs", KwBreak: "KwBreak", KwConst: "KwConst",
	KwContinue: "KwContinue", KwCrate: "KwCrate", KwElse: "KwElse",
	KwEnum: "KwEnum", KwExtern: "KwExtern", KwFalse: "KwFalse",
	KwFn: "KwFn", KwFor: "KwFor", KwIf: "KwIf", KwImpl: "KwImpl",
	KwIn: "KwIn", KwLet: "KwLet", KwLoop: "KwLoop", KwMatch: "KwMatch",
	KwMod: "KwMod", KwMove: "KwMove", KwMut: "KwMut", KwPub: "KwPub",
	KwRef: "KwRef", KwReturn: "KwReturn", KwSelf: "KwSelf",
	KwSelfType: "KwSelfType", KwStatic: "KwStatic", KwStruct: "KwStruct",
	KwSuper: "KwSuper", KwTrait: "KwTrait", KwTrue: "KwTrue",
	KwType: "KwType", KwUnsafe: "KwUnsafe", KwUse: "KwUse",
	KwWhere: "KwWhere", KwWhile: "KwWhile", KwAsync: "KwAsync",
	KwAwait: "KwAwait", KwDyn: "KwDyn", KwAbstract: "KwAbstract",
	KwBecome: "KwBecome", KwBox: "KwBox", KwDo: "KwDo", KwFinal: "KwFinal",
	KwMacro: "KwMacro", KwOverride: "KwOverride", KwPriv: "KwPriv",
	KwTypeof: "KwTypeof", KwUnsized: "KwUnsized", KwVirtual: "KwVirtual",
	KwYield: "KwYield", KwTry: "KwTry", KwUnion: "KwUnion",

	Lifetime:       "Lifetime",
	StaticLifetime: "StaticLifetime",
	Label:          "Label",

	CharLit:          "CharLit",
	ByteLit:          "ByteLit",
	StringLit:        "StringLit",
	ByteStringLit:    "ByteStringLit",
	RawStringLit:     "RawStringLit",
	RawByteStringLit: "RawByteStringLit",
	IntDecLit:        "IntDecLit",
	IntHexLit:        "IntHexLit",
	IntOctLit:        "IntOctLit",
	IntBinLit:        "IntBinLit",
	FloatLit:         "FloatLit",

	Comment:         "Comment",
	CommentInnerDoc: "CommentInnerDoc",
	CommentOuterDoc: "CommentOuterDoc",

	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash",
	Percent: "Percent", Caret: "Caret", Not: "Not", Amp: "Amp",
	Pipe: "Pipe", AndAnd: "AndAnd", OrOr: "OrOr", Shl: "Shl", Shr: "Shr",
	PlusEq: "PlusEq", MinusEq: "MinusEq", StarEq: "StarEq",
	SlashEq: "SlashEq", PercentEq: "PercentEq", CaretEq: "CaretEq",
	AmpEq: "AmpEq", PipeEq: "PipeEq", ShlEq: "ShlEq", ShrEq: "ShrEq",
	Eq: "Eq", EqEq: "EqEq", Ne: "Ne", Gt: "Gt", Lt: "Lt", Ge: "Ge",
	Le: "Le", At: "At", Dot: "Dot", DotDot: "DotDot",
	DotDotDot: "DotDotDot", DotDotEq: "DotDotEq", Comma: "Comma",
	Semicolon: "Semicolon", Colon: "Colon", PathSep: "PathSep",
	Arrow: "Arrow", FatArrow: "FatArrow", Pound: "Pound",
	Dollar: "Dollar", Question: "Question", LParen: "LParen",
	RParen: "RParen", LBracket: "LBracket", RBracket: "RBracket",
	LBrace: "LBrace", RBrace: "RBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
