package ir

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < List < Dict
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromFloat(1e9), FromString("a"), -1},
		{"String < List", FromString("a"), FromSlice(nil), -1},
		{"List < Dict", FromSlice(nil), FromKeyVals(nil), -1},

		{"Null == Null", Null(), Null(), 0},
		{"false < true", FromBool(false), FromBool(true), -1},
		{"ints", FromInt(3), FromInt(-3), 1},
		{"int vs float", FromInt(1), FromFloat(1.5), -1},
		{"int before equal float", FromInt(1), FromFloat(1), -1},
		{"strings", FromString("b"), FromString("a"), 1},
		{"list prefix", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"list elem", FromSlice([]*Node{FromInt(2)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), 1},
		{"dict keys", FromKeyVals([]KeyVal{{"a", Null()}}), FromKeyVals([]KeyVal{{"b", Null()}}), -1},
		{"dict vals", FromKeyVals([]KeyVal{{"a", FromInt(2)}}), FromKeyVals([]KeyVal{{"a", FromInt(1)}}), 1},
		{"nil", nil, Null(), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("reversed Compare() = %d, want %d", got, -tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	mk := func() *Node {
		return FromKeyVals([]KeyVal{
			{"a", FromInt(1)},
			{"b", FromSlice([]*Node{FromBool(false), FromFloat(math.NaN()), Null()})},
		})
	}
	if !Equal(mk(), mk()) {
		t.Error("identical trees should be equal")
	}
	if !Equal(mk(), mk().Clone()) {
		t.Error("clone should be equal")
	}
	reordered := FromKeyVals([]KeyVal{
		{"b", mk().Values[1]},
		{"a", FromInt(1)},
	})
	if Equal(mk(), reordered) {
		t.Error("member order is significant")
	}
	if Equal(FromInt(1), FromFloat(1)) {
		t.Error("int and float are different types")
	}
	if Equal(FromFloat(0), FromFloat(math.Copysign(0, -1))) {
		t.Error("0.0 and -0.0 encode differently")
	}
	if !Equal(nil, nil) || Equal(nil, Null()) {
		t.Error("nil handling")
	}
}
