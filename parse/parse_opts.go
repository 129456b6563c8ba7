package parse

import (
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/token"
)

// DefaultMaxDepth is the container nesting limit used unless MaxDepth is
// given.
const DefaultMaxDepth = 1000

type parseOpts struct {
	maxDepth    int
	lenientNone bool
	positions   map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth limits the nesting of lists and dicts.  Values below 1 disable
// the limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// LenientNone accepts any payload inside <none>...</none>.
func LenientNone(v bool) ParseOption {
	return func(o *parseOpts) { o.lenientNone = v }
}

// ParsePositions records the position of the opening tag of every parsed
// node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
