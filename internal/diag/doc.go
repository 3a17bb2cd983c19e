// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lexer and the grammar engine.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform IO. Rendering lives in internal/diagfmt; the
// single-line form produced by FormatShort is the only text helper kept here
// because the driver writes it to its error channel.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – numeric identifier with a stable string ID (LEX1001, SYN2001...).
//   - Message – short, human oriented text.
//   - Primary – the source.Span pointing at the problem.
//   - Notes – optional secondary spans, e.g. where a construct started.
//
// Producers use a Reporter; BagReporter collects into a Bag which supports
// limits, sorting and deduplication.
package diag
