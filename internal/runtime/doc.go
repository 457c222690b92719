/*
Package runtime holds the dispatch machinery behind a loop.

An Environment is an ordered option list with first-match lookup. A
Dispatcher tokenizes a line through a token.Parser, checks every token for
membership, resolves the command (value, then kind, then equality with
input modifiers) and invokes the handler.
*/
package runtime
