package ir

import (
	"cmp"
	"math"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType:
		if a.Type != b.Type {
			return compareMixed(a, b)
		}
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		if a.Type != b.Type {
			return compareMixed(a, b)
		}
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ListType:
		return compareLists(a, b)
	case DictType:
		return compareDicts(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int,Float < String < List < Dict
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, FloatType:
		return 2
	case StringType:
		return 3
	case ListType:
		return 4
	case DictType:
		return 5
	}
	return 100
}

// ints sort before floats of the same value.
func compareMixed(a, b *Node) int {
	if c := cmp.Compare(asFloat(a), asFloat(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

func asFloat(n *Node) float64 {
	if n.Type == IntType {
		return float64(n.Int64)
	}
	return n.Float64
}

func compareLists(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// dicts compare member by member in order, key first.
func compareDicts(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// Equal reports whether a and b are structurally equal: same types, same
// payloads, same member order.  Floats are equal when == holds or both are
// NaN.  Parent links are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int64 == b.Int64
	case FloatType:
		if math.IsNaN(a.Float64) {
			return math.IsNaN(b.Float64)
		}
		return a.Float64 == b.Float64 && math.Signbit(a.Float64) == math.Signbit(b.Float64)
	case StringType:
		return a.String == b.String
	case ListType, DictType:
		if len(a.Values) != len(b.Values) || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}
