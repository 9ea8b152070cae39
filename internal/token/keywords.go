package token

var keywords = map[string]Kind{
	"as":       KwAs,
	"break":    KwBreak,
	"const":    KwConst,
	"continue": KwContinue,
	"crate":    KwCrate,
	"else":     KwElse,
	"enum":     KwEnum,
	"extern":   KwExtern,
	"false":    KwFalse,
	"fn":       KwFn,
	"for":      KwFor,
	"if":       KwIf,
	"impl":     KwImpl,
	"in":       KwIn,
	"let":      KwLet,
	"loop":     KwLoop,
	"match":    KwMatch,
	"mod":      KwMod,
	"move":     KwMove,
	"mut":      KwMut,
	"pub":      KwPub,
	"ref":      KwRef,
	"return":   KwReturn,
	"self":     KwSelf,
	"Self":     KwSelfType,
	"static":   KwStatic,
	"struct":   KwStruct,
	"super":    KwSuper,
	"trait":    KwTrait,
	"true":     KwTrue,
	"type":     KwType,
	"unsafe":   KwUnsafe,
	"use":      KwUse,
	"where":    KwWhere,
	"while":    KwWhile,
	"async":    KwAsync,
	"await":    KwAwait,
	"dyn":      KwDyn,
	"abstract": KwAbstract,
	"become":   KwBecome,
	"box":      KwBox,
	"do":       KwDo,
	"final":    KwFinal,
	"macro":    KwMacro,
	"override": KwOverride,
	"priv":     KwPriv,
	"typeof":   KwTypeof,
	"unsized":  KwUnsized,
	"virtual":  KwVirtual,
	"yield":    KwYield,
	"try":      KwTry,
	// 'union' is intentionally absent: it is a weak keyword, reclassified
	// retroactively by the scanner.
	"'static": StaticLifetime,
}

// LookupKeyword returns the keyword kind for an identifier-shaped lexeme.
// Keywords are case-sensitive ("Self" is the one capitalized entry).
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
