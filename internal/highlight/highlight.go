package highlight

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"rustlex/internal/token"
)

// Highlight replays the source bytes to w, switching styles at each token
// start. Whitespace between tokens inherits the style of the preceding token,
// so an error marker stays visible up to the next token. content must be the
// exact bytes the tokens were scanned from.
func Highlight(w io.Writer, content []byte, tokens []token.Token, theme *Theme) error {
	if theme == nil {
		theme = DefaultTheme()
	}

	var (
		line, col uint32
		idx       int
		cur       *color.Color
		run       []byte
	)

	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		var err error
		if cur != nil {
			_, err = cur.Fprint(w, string(run))
		} else {
			_, err = fmt.Fprint(w, string(run))
		}
		run = run[:0]
		return err
	}

	for _, c := range content {
		// several tokens may start at the same position (an error marker
		// followed by the replayed character); the last one wins
		for idx < len(tokens) && tokens[idx].Line == line && tokens[idx].Col == col {
			style := theme.Style(tokens[idx].Kind.Category())
			if style != cur {
				if err := flush(); err != nil {
					return err
				}
				cur = style
			}
			idx++
		}
		run = append(run, c)

		if c == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return flush()
}
