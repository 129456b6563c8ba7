package ir

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Node is one value of a tagged-text document.
//
// Dict nodes keep their keys in Fields and the corresponding values in
// Values, index for index, in insertion order.  List nodes only use Values.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []string
	Values      []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ListType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, y := range ySlice {
		if y == nil {
			y = Null()
		}
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// Append adds v to the end of the list y.
func (y *Node) Append(v *Node) *Node {
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
	return y
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates a dict with the given members in order.  A repeated
// key replaces the value of its first occurrence.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   DictType,
		Fields: make([]string, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap creates a dict from m with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

// Set sets the member key of dict y to val.  An existing member keeps its
// position.
func (y *Node) Set(key string, val *Node) *Node {
	if val == nil {
		val = Null()
	}
	val.Parent = y
	val.ParentField = key
	for i, f := range y.Fields {
		if f == key {
			val.ParentIndex = i
			y.Values[i] = val
			return y
		}
	}
	val.ParentIndex = len(y.Fields)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
	return y
}

// Get returns the value of member field in dict y, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != DictType {
		return nil
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != DictType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

// ValidKey reports whether key can be written as a tag name without
// ambiguity.
func ValidKey(key string) error {
	if i := strings.IndexAny(key, "<>"); i != -1 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidKey, key, key[i])
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Depth returns the container nesting depth of y: 0 for scalars, 1 for a
// list or dict of scalars, and so on.
func (y *Node) Depth() int {
	if y == nil || y.Type.IsLeaf() {
		return 0
	}
	d := 0
	for _, v := range y.Values {
		d = max(d, v.Depth())
	}
	return d + 1
}
