// Package token defines the segments a dialog scanner produces.
// Invariants:
//   - Token.Text is the exact source text under Token.Span.
//   - Literal text never contains '{' or '}'; escapes are separate tokens.
//   - A Macro token starts with '{' and, unless FlagUnterminated is set,
//     ends with the '}' that balances it.
package token
