// Package debug provides env-var gated debug logging for uniparse.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Strip  bool
	Paths  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("UNIPARSE_DEBUG_TOKENS")
	d.Strip = boolEnv("UNIPARSE_DEBUG_STRIP")
	d.Paths = boolEnv("UNIPARSE_DEBUG_PATHS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Strip() bool {
	return d.Strip
}
func Paths() bool {
	return d.Paths
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
