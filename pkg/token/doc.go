// Package token provides the word-level parsers used by loops to turn raw
// input into typed values. The default grammar is closed; user text is
// never evaluated.
package token
