package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// Change is one difference between two documents.
//
// Path is in the from document for Delete and Replace, and in the to
// document for Insert.  Patch is set when a multi-line string is replaced
// and holds a diffmatchpatch patch text from From to To.
type Change struct {
	Path  string
	Op    Op
	From  *ir.Node
	To    *ir.Node
	Patch string
}

func (c *Change) String() string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "%s %s", c.Op, c.Path)
	if c.From != nil {
		fmt.Fprintf(buf, " from %s", encode.MustString(c.From))
	}
	if c.To != nil {
		fmt.Fprintf(buf, " to %s", encode.MustString(c.To))
	}
	return buf.String()
}

// ToNode renders changes as a list of dicts with members path, op and,
// where present, from, to and patch.
func ToNode(changes []Change) *ir.Node {
	res := ir.FromSlice(nil)
	for i := range changes {
		c := &changes[i]
		kvs := []ir.KeyVal{
			{Key: "path", Val: ir.FromString(c.Path)},
			{Key: "op", Val: ir.FromString(c.Op.String())},
		}
		if c.From != nil {
			kvs = append(kvs, ir.KeyVal{Key: "from", Val: c.From.Clone()})
		}
		if c.To != nil {
			kvs = append(kvs, ir.KeyVal{Key: "to", Val: c.To.Clone()})
		}
		if c.Patch != "" {
			kvs = append(kvs, ir.KeyVal{Key: "patch", Val: ir.FromString(c.Patch)})
		}
		res.Append(ir.FromKeyVals(kvs))
	}
	return res
}

// Reverse returns the changes that lead from the to document back to the
// from document.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = Replace
			if c.Patch != "" {
				r.Patch = stringPatch(c.To.String, c.From.String)
			}
		}
		res[i] = r
	}
	return res
}
