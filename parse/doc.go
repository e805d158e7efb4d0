// Package parse turns build-script DSL source into an ir tree.
//
// The grammar is ambiguous at the token level: after an identifier, only
// bounded lookahead decides between a nested block, an assignment, a
// keyed pair group, a call and a plain value. The precedence of those
// five forms is a hard contract; see parseEntry.
//
// Parsing is all or nothing. The first lexical or syntax error aborts the
// parse and no partial tree is returned.
package parse
