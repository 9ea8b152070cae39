package highlight

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"rustlex/internal/token"
)

// Theme maps token categories to terminal styles.
type Theme struct {
	styles [token.CatError + 1]*color.Color
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() *Theme {
	t := &Theme{}
	t.styles[token.CatKeyword] = color.New(color.FgMagenta)
	t.styles[token.CatIdent] = color.New(color.FgCyan)
	t.styles[token.CatComment] = color.New(color.FgHiBlack, color.Italic)
	t.styles[token.CatLifetime] = color.New(color.FgYellow)
	t.styles[token.CatCharLit] = color.New(color.FgBlue, color.Italic)
	t.styles[token.CatStringLit] = color.New(color.FgGreen)
	t.styles[token.CatNumber] = color.New(color.FgBlue)
	t.styles[token.CatError] = color.New(color.BgRed)
	return t
}

// Style returns the style for a category; nil means unstyled output.
func (t *Theme) Style(cat token.Category) *color.Color {
	if int(cat) < len(t.styles) {
		return t.styles[cat]
	}
	return nil
}

var attrByName = map[string]color.Attribute{
	"bold":      color.Bold,
	"italic":    color.Italic,
	"underline": color.Underline,

	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,

	"hi_black":   color.FgHiBlack,
	"hi_red":     color.FgHiRed,
	"hi_green":   color.FgHiGreen,
	"hi_yellow":  color.FgHiYellow,
	"hi_blue":    color.FgHiBlue,
	"hi_magenta": color.FgHiMagenta,
	"hi_cyan":    color.FgHiCyan,
	"hi_white":   color.FgHiWhite,

	"bg_black":   color.BgBlack,
	"bg_red":     color.BgRed,
	"bg_green":   color.BgGreen,
	"bg_yellow":  color.BgYellow,
	"bg_blue":    color.BgBlue,
	"bg_magenta": color.BgMagenta,
	"bg_cyan":    color.BgCyan,
	"bg_white":   color.BgWhite,
}

var categoryByName = map[string]token.Category{
	"plain":      token.CatPlain,
	"keyword":    token.CatKeyword,
	"identifier": token.CatIdent,
	"comment":    token.CatComment,
	"lifetime":   token.CatLifetime,
	"char":       token.CatCharLit,
	"string":     token.CatStringLit,
	"number":     token.CatNumber,
	"error":      token.CatError,
}

// LoadTheme reads a TOML theme file. Each key is a category name mapping to a
// list of attribute names, e.g.
//
//	keyword = ["magenta", "bold"]
//	comment = ["hi_black", "italic"]
//
// Categories missing from the file keep the default style.
func LoadTheme(path string) (*Theme, error) {
	var raw map[string][]string
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}

	t := DefaultTheme()
	for name, attrNames := range raw {
		cat, ok := categoryByName[name]
		if !ok {
			return nil, fmt.Errorf("theme %s: unknown category %q", path, name)
		}
		attrs := make([]color.Attribute, 0, len(attrNames))
		for _, attrName := range attrNames {
			attr, ok := attrByName[attrName]
			if !ok {
				return nil, fmt.Errorf("theme %s: unknown attribute %q", path, attrName)
			}
			attrs = append(attrs, attr)
		}
		if len(attrs) == 0 {
			t.styles[cat] = nil
		} else {
			t.styles[cat] = color.New(attrs...)
		}
	}
	return t, nil
}
