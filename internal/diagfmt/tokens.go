package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"rustlex/internal/token"
)

// TokenOutput is the serialized shape of a token for json and msgpack dumps.
// Line and Col are 0-based.
type TokenOutput struct {
	Kind string `json:"kind" msgpack:"kind"`
	Text string `json:"text,omitempty" msgpack:"text,omitempty"`
	Line uint32 `json:"line" msgpack:"line"`
	Col  uint32 `json:"col" msgpack:"col"`
}

// FormatTokensPretty writes one numbered line per token.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%4d: %-18s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d\n", tok.Line, tok.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens))
}

// FormatTokensMsgpack writes the token stream as a msgpack array, a compact
// form for machine consumers.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	encoder := msgpack.NewEncoder(w)
	return encoder.Encode(tokenOutputs(tokens))
}

func tokenOutputs(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Line,
			Col:  tok.Col,
		})
	}
	return output
}
