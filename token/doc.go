// Package token tokenizes build-script DSL source.
//
// The tokenizer is a single pass over the raw (comment-stripped) bytes with
// one character of lookahead. It produces the full token sequence or fails
// with a lexical error at the first unrecognized construct; there is no
// partial output after a failure.
package token
