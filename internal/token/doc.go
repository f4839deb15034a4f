// Package token defines the lexical vocabulary of lil-C.
// Invariants:
//   - Token.Text is the exact source text under Token.Span.
//   - Comments never reach the token stream.
//   - Type names int, bool and void are keywords, not identifiers.
package token
