// Package diag defines the diagnostic model shared by the scanner, the macro
// decoder, the grammar resolver and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning, Error (severity.go).
//   - Code – numeric identifier with a stable prefixed ID (codes.go).
//   - Message – short, human oriented text.
//   - Primary – the span of the offending macro or delimiter.
//   - Notes – optional secondary spans/messages.
//   - Fixes – optional text edits, e.g. doubling a stray '}'.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter; BagReporter collects into a Bag that the CLI
// sorts and renders through internal/diagfmt. Package diag performs no IO.
//
// The compiler itself aborts on the first problem and returns an error value;
// diagnostics are produced by the check pass, which keeps going after each
// problem, and by the driver when it turns a compile error into output.
package diag
