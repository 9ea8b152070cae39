// Package token defines the lexical token kinds of the rustlex scanner.
// Invariants:
//   - Token.Text is the exact source spelling for identifiers, literals,
//     comments, lifetimes and labels; keywords and punctuation carry none.
//   - Token positions are 0-based (line, column) of the lexeme's first
//     character and are non-decreasing across the emitted stream.
//   - Error tokens reuse Text for the diagnostic message; they are ordinary
//     stream members, never aborts.
package token
