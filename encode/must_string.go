package encode

import (
	"bytes"
	"strings"

	"github.com/uniparse/go-uniparse/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimRight(buf.String(), "\n")
}
