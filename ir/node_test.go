package ir

import (
	"errors"
	"slices"
	"testing"
)

func TestSetKeepsPosition(t *testing.T) {
	d := FromKeyVals([]KeyVal{
		{"a", FromInt(1)},
		{"b", FromInt(2)},
		{"a", FromInt(3)},
	})
	if !slices.Equal(d.Fields, []string{"a", "b"}) {
		t.Fatalf("fields %v", d.Fields)
	}
	if got := Get(d, "a"); got == nil || got.Int64 != 3 {
		t.Errorf("a = %v", got)
	}
	if got := Get(d, "a"); got.Parent != d || got.ParentIndex != 0 || got.ParentField != "a" {
		t.Errorf("bad parent links on replaced member")
	}
}

func TestFromMapSorted(t *testing.T) {
	d := FromMap(map[string]*Node{
		"z": Null(),
		"m": Null(),
		"a": Null(),
	})
	if !slices.Equal(d.Fields, []string{"a", "m", "z"}) {
		t.Errorf("fields %v", d.Fields)
	}
	if len(ToMap(d)) != 3 {
		t.Error("ToMap")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromSlice([]*Node{FromKeyVals([]KeyVal{{"k", FromString("v")}})})
	c := orig.Clone()
	c.Values[0].Values[0].String = "changed"
	c.Values[0].Fields[0] = "x"
	if orig.Values[0].Values[0].String != "v" || orig.Values[0].Fields[0] != "k" {
		t.Error("clone shares state with original")
	}
	if c.Values[0].Parent != c {
		t.Error("clone parent links")
	}
}

func TestValidKey(t *testing.T) {
	for _, k := range []string{"a", "", "a b", "a/b", "list"} {
		if err := ValidKey(k); err != nil {
			t.Errorf("%q: %v", k, err)
		}
	}
	for _, k := range []string{"a>b", "<a", "<"} {
		if err := ValidKey(k); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("%q: expected ErrInvalidKey, got %v", k, err)
		}
	}
}

func TestDepthAndTruth(t *testing.T) {
	n := FromInt(0)
	for range 5 {
		n = FromSlice([]*Node{n})
	}
	if n.Depth() != 5 {
		t.Errorf("depth %d", n.Depth())
	}
	if Truth(FromSlice(nil)) || !Truth(n) || Truth(FromString("")) || !Truth(FromFloat(0.5)) || Truth(Null()) {
		t.Error("truth")
	}
}

func TestPath(t *testing.T) {
	d := FromKeyVals([]KeyVal{
		{"a", FromSlice([]*Node{FromInt(0), FromKeyVals([]KeyVal{{"b.c", Null()}})})},
	})
	leaf := d.Values[0].Values[1].Values[0]
	if got := leaf.Path(); got != "$.a[1].'b.c'" {
		t.Errorf("path %q", got)
	}
	if leaf.Root() != d {
		t.Error("root")
	}
}
