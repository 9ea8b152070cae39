package lexer

import (
	"rustlex/internal/diag"
	"rustlex/internal/source"
)

// Options configures a Scanner. Reporter may be nil: Error tokens are still
// emitted into the stream, only the mirrored diagnostics are dropped.
// Interner may be nil: identifier texts are then allocated individually.
type Options struct {
	Reporter diag.Reporter
	Interner *source.Interner
}
