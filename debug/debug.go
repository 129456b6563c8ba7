// Package debug holds per-area debug switches read from the environment and
// a small stderr logger that renders IR nodes as tagged text.
//
// Set TT_DEBUG_PARSE, TT_DEBUG_ENCODE, TT_DEBUG_DIFF, TT_DEBUG_EVAL or
// TT_DEBUG_PATCH to a true value (as understood by strconv.ParseBool) to
// enable tracing of the corresponding area.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Diff   bool
	Eval   bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TT_DEBUG_PARSE")
	d.Encode = boolEnv("TT_DEBUG_ENCODE")
	d.Diff = boolEnv("TT_DEBUG_DIFF")
	d.Eval = boolEnv("TT_DEBUG_EVAL")
	d.Patch = boolEnv("TT_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
