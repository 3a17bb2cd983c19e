// Package token defines lexical token kinds and trivia for Ada source text.
// Invariants:
//   - Token.Text is the exact source spelling (keywords keep their case).
//   - Token.Span matches Text exactly (Start..End).
//   - Keywords are recognised case-insensitively by LookupKeyword.
//   - Comments and whitespace are Trivia and never appear in the token stream.
//   - Attribute names after a tick ('First, 'Range) are lexed as ordinary
//     identifiers or keywords; the parser decides how to read them.
package token
