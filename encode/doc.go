// Package encode renders ir trees back to build-script DSL text.
//
// Rendering always succeeds for well-formed trees; Encode returns an error
// only when the underlying writer fails. Entries render in source order
// with four spaces of indentation per nesting level.
package encode
