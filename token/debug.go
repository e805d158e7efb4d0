package token

import (
	"fmt"
	"strings"
)

// Dump formats a token sequence for debug output.
func Dump(toks []Token) string {
	var sb strings.Builder
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(&sb, "%s(%q) ", t.Type, string(t.Bytes))
	}
	return strings.TrimSpace(sb.String())
}
