package libdiff

import (
	"strings"

	"github.com/signadot/tagtext/debug"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order.  Equal
// documents give no changes.
func Diff(from, to *ir.Node) []Change {
	if from == nil {
		from = ir.Null()
	}
	if to == nil {
		to = ir.Null()
	}
	d := &differ{}
	d.diff("$", from, to)
	if debug.Diff() {
		debug.Logf("diff %s -> %s: %d changes\n", debug.TagText{Node: from}, debug.TagText{Node: to}, len(d.changes))
	}
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(c Change) {
	if c.From != nil {
		c.From = c.From.Clone()
		c.From.Parent = nil
	}
	if c.To != nil {
		c.To = c.To.Clone()
		c.To.Parent = nil
	}
	d.changes = append(d.changes, c)
}

func (d *differ) diff(path string, from, to *ir.Node) {
	if from.Type != to.Type {
		d.add(Change{Path: path, Op: Replace, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.DictType:
		d.diffDict(path, from, to)
	case ir.ListType:
		d.diffList(path, from, to)
	case ir.StringType:
		if from.String == to.String {
			return
		}
		c := Change{Path: path, Op: Replace, From: from, To: to}
		if strings.Contains(from.String, "\n") && strings.Contains(to.String, "\n") {
			c.Patch = stringPatch(from.String, to.String)
		}
		d.add(c)
	default:
		if !ir.Equal(from, to) {
			d.add(Change{Path: path, Op: Replace, From: from, To: to})
		}
	}
}

// diffDict diffs the key sequences and recurses into the values of keys
// present in both.
func (d *differ) diffDict(path string, from, to *ir.Node) {
	fieldMap := map[string]rune{}
	fromRunes := mapFields(fieldMap, from)
	toRunes := mapFields(fieldMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				d.add(Change{Path: ir.FieldPath(path, from.Fields[fi]), Op: Delete, From: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				d.diff(ir.FieldPath(path, from.Fields[fi]), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Change{Path: ir.FieldPath(path, to.Fields[ti]), Op: Insert, To: to.Values[ti]})
				ti++
			}
		}
	}
}

// diffList diffs the sequences of element summaries.  Elements with equal
// summaries are diffed recursively, and a run of deletions directly
// followed by insertions is paired up into replacements.
func (d *differ) diffList(path string, from, to *ir.Node) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			for j := range max(n, ins) {
				switch {
				case j < n && j < ins:
					d.diff(ir.IndexPath(path, fi), from.Values[fi], to.Values[ti])
					fi++
					ti++
				case j < n:
					d.add(Change{Path: ir.IndexPath(path, fi), Op: Delete, From: from.Values[fi]})
					fi++
				default:
					d.add(Change{Path: ir.IndexPath(path, ti), Op: Insert, To: to.Values[ti]})
					ti++
				}
			}
		case diffpatch.DiffEqual:
			for range n {
				d.diff(ir.IndexPath(path, fi), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Change{Path: ir.IndexPath(path, ti), Op: Insert, To: to.Values[ti]})
				ti++
			}
		}
	}
}

func mapFields(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		rs[i] = intern(m, f)
	}
	return rs
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		rs[i] = intern(m, summary(v))
	}
	return rs
}

// intern assigns runes from the private use area so that the rune diff
// never sees surrogates.
func intern(m map[string]rune, s string) rune {
	r, ok := m[s]
	if !ok {
		r = rune(0xF0000 + len(m))
		m[s] = r
	}
	return r
}

// summary identifies a list element for matching.  Containers and
// multi-line strings summarize to their type alone so that they are diffed
// in place rather than replaced.
func summary(node *ir.Node) string {
	switch node.Type {
	case ir.DictType, ir.ListType, ir.NullType:
		return node.Type.Tag()
	case ir.BoolType:
		return node.Type.Tag() + "-" + token.FormatBool(node.Bool)
	case ir.IntType:
		return node.Type.Tag() + "-" + token.FormatInt(node.Int64)
	case ir.FloatType:
		return node.Type.Tag() + "-" + token.FormatFloat(node.Float64)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.Tag() + "/m"
		}
		return node.Type.Tag() + "-" + node.String
	default:
		panic("type")
	}
}

func stringPatch(from, to string) string {
	dmp := diffpatch.New()
	return dmp.PatchToText(dmp.PatchMake(from, to))
}
