package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/token"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreParents = cmpopts.IgnoreFields(ir.Node{}, "Parent", "ParentIndex", "ParentField")

type parseTest struct {
	in   string
	want *ir.Node
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   `<int>42</int>`,
			want: ir.FromInt(42),
		},
		{
			in:   `<int>-7</int>`,
			want: ir.FromInt(-7),
		},
		{
			in:   `<bool>False</bool>`,
			want: ir.FromBool(false),
		},
		{
			in:   `<bool>True</bool>`,
			want: ir.FromBool(true),
		},
		{
			in:   `<str>hello</str>`,
			want: ir.FromString("hello"),
		},
		{
			in:   `<str></str>`,
			want: ir.FromString(""),
		},
		{
			in:   "<str> spaced\n\tout </str>",
			want: ir.FromString(" spaced\n\tout "),
		},
		{
			in:   `<str><int>1</int></str>`,
			want: ir.FromString("<int>1</int>"),
		},
		{
			in:   `<float>1.5</float>`,
			want: ir.FromFloat(1.5),
		},
		{
			in:   `<float>1e+16</float>`,
			want: ir.FromFloat(1e16),
		},
		{
			in:   `<none>None</none>`,
			want: ir.Null(),
		},
		{
			in:   `<list></list>`,
			want: ir.FromSlice(nil),
		},
		{
			in:   `<dict></dict>`,
			want: ir.FromKeyVals(nil),
		},
		{
			in:   `<list><int>1</int><int>2</int><str>x</str></list>`,
			want: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromString("x")}),
		},
		{
			in: `<dict><a><int>1</int></a><b><list><bool>False</bool></list></b></dict>`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromInt(1)},
				{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromBool(false)})},
			}),
		},
		{
			in: `<list><list><list></list></list><list><int>0</int></list></list>`,
			want: ir.FromSlice([]*ir.Node{
				ir.FromSlice([]*ir.Node{ir.FromSlice(nil)}),
				ir.FromSlice([]*ir.Node{ir.FromInt(0)}),
			}),
		},
		{
			in: `<dict><dict><dict><list><dict></dict></list></dict></dict><z><none>None</none></z></dict>`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "dict", Val: ir.FromKeyVals([]ir.KeyVal{
					{Key: "list", Val: ir.FromKeyVals(nil)},
				})},
				{Key: "z", Val: ir.Null()},
			}),
		},
		{
			in: `<dict><a b/c><str>v</str></a b/c><><int>0</int></></dict>`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "a b/c", Val: ir.FromString("v")},
				{Key: "", Val: ir.FromInt(0)},
			}),
		},
		{
			in: `<list><dict><k><list><str>in</str></list></k></dict><dict></dict></list>`,
			want: ir.FromSlice([]*ir.Node{
				ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromSlice([]*ir.Node{ir.FromString("in")})}}),
				ir.FromKeyVals(nil),
			}),
		},
	}
	for _, pt := range pts {
		got, err := ParseString(pt.in)
		if err != nil {
			t.Errorf("%s: %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.want, got, ignoreParents, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", pt.in, diff)
		}
		if !ir.Equal(pt.want, got) {
			t.Errorf("%s: ir.Equal disagrees with cmp", pt.in)
		}
	}
}

func TestParseDictOrder(t *testing.T) {
	got, err := ParseString(`<dict><b><int>1</int></b><a><int>2</int></a><c><int>3</int></c></dict>`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, got.Fields); diff != "" {
		t.Error(diff)
	}
	for i, v := range got.Values {
		if v.Parent != got || v.ParentIndex != i || v.ParentField != got.Fields[i] {
			t.Errorf("member %d parent links", i)
		}
	}
}

func TestParseDuplicateKey(t *testing.T) {
	got, err := ParseString(`<dict><a><int>1</int></a><b><int>2</int></b><a><int>3</int></a></dict>`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(3)},
		{Key: "b", Val: ir.FromInt(2)},
	})
	if !ir.Equal(want, got) {
		t.Errorf("got %s", encode.MustString(got))
	}
}

func TestParseFloat(t *testing.T) {
	for in, want := range map[string]float64{
		"<float>0.1</float>":      0.1,
		"<float>-0.0</float>":     math.Copysign(0, -1),
		"<float>1e-05</float>":    1e-5,
		"<float>inf</float>":      math.Inf(1),
		"<float>-inf</float>":     math.Inf(-1),
		"<float>3</float>":        3,
		"<float>1e999</float>":    math.Inf(1),
		"<float>2.5E+3</float>":   2500,
		"<float>Infinity</float>": math.Inf(1),
	} {
		got, err := ParseString(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if !ir.Equal(got, ir.FromFloat(want)) {
			t.Errorf("%s: got %v want %v", in, got.Float64, want)
		}
	}
	got, err := ParseString("<float>nan</float>")
	if err != nil || !math.IsNaN(got.Float64) {
		t.Errorf("nan: %v %v", got, err)
	}
}

type errTest struct {
	in  string
	err error
	off int
}

func TestParseErrors(t *testing.T) {
	ets := []errTest{
		{in: ``, err: ErrMalformedInput, off: 0},
		{in: `int>1</int>`, err: ErrMalformedInput, off: 0},
		{in: `<list>x</list>`, err: ErrMalformedInput, off: 6},
		{in: `<dict>x</dict>`, err: ErrMalformedInput, off: 6},
		{in: `<dict><a><int>1</int></b></dict>`, err: ErrMalformedInput, off: 21},
		{in: `<dict><a><int>1</int></dict>`, err: ErrMalformedInput, off: 21},
		{in: `<tuple>1</tuple>`, err: ErrUnknownTypeTag, off: 0},
		{in: `<list><set></set></list>`, err: ErrUnknownTypeTag, off: 6},
		{in: `<dict><a><x>1</x></a></dict>`, err: ErrUnknownTypeTag, off: 9},
		{in: `<str>hello`, err: ErrUnterminatedTag, off: 0},
		{in: `<int`, err: ErrUnterminatedTag, off: 0},
		{in: `<list><int>1</int>`, err: ErrUnterminatedTag, off: 0},
		{in: `<list><list></list>`, err: ErrUnterminatedTag, off: 0},
		{in: `<dict><a><int>1</int></a>`, err: ErrUnterminatedTag, off: 0},
		{in: `<list><str>a</list>`, err: ErrUnterminatedTag, off: 6},
		{in: `<dict><a</dict>`, err: ErrUnterminatedTag, off: 6},
		{in: `<bool>true</bool>`, err: ErrInvalidBool, off: 6},
		{in: `<bool></bool>`, err: ErrInvalidBool, off: 6},
		{in: `<int>not_a_number</int>`, err: ErrInvalidInt, off: 5},
		{in: `<int>1.0</int>`, err: ErrInvalidInt, off: 5},
		{in: `<int>99999999999999999999</int>`, err: ErrInvalidInt, off: 5},
		{in: `<list><int></int></list>`, err: ErrInvalidInt, off: 11},
		{in: `<int>+5</int>`, err: ErrInvalidInt, off: 5},
		{in: `<float>1.2.3</float>`, err: ErrInvalidFloat, off: 7},
		{in: `<float>0x1p-2</float>`, err: ErrInvalidFloat, off: 7},
		{in: `<none>null</none>`, err: ErrInvalidNone, off: 6},
		{in: `<none></none>`, err: ErrInvalidNone, off: 6},
		{in: `<list><int>1</int></list>extra`, err: ErrTrailingData, off: 25},
		{in: `<int>1</int><int>2</int>`, err: ErrTrailingData, off: 12},
		{in: "<int>1</int>\n", err: ErrTrailingData, off: 12},
	}
	for _, et := range ets {
		_, err := ParseString(et.in)
		if err == nil {
			t.Errorf("%q: expected error", et.in)
			continue
		}
		if !errors.Is(err, et.err) {
			t.Errorf("%q: got %v, want %v", et.in, err, et.err)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap ErrParse", et.in, err)
		}
		var pErr *Error
		if !errors.As(err, &pErr) {
			t.Errorf("%q: %T is not *Error", et.in, err)
			continue
		}
		if pErr.Offset() != et.off {
			t.Errorf("%q: error at offset %d, want %d (%v)", et.in, pErr.Offset(), et.off, err)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := ParseString("<int>not_a_number</int>")
	want := "parse error: invalid int literal: \"not_a_number\": invalid syntax at `...<int>not_a...` at offset 5 (line=0, col=5)"
	if err == nil || err.Error() != want {
		t.Errorf("got %v\nwant %s", err, want)
	}
}

func TestLenientNone(t *testing.T) {
	got, err := ParseString("<none>null</none>", LenientNone(true))
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NullType {
		t.Errorf("got %s", got.Type)
	}
}

func nested(depth int) string {
	return strings.Repeat("<list>", depth) + "<int>0</int>" + strings.Repeat("</list>", depth)
}

func TestParseDeep(t *testing.T) {
	got, err := ParseString(nested(500))
	if err != nil {
		t.Fatal(err)
	}
	if got.Depth() != 500 {
		t.Errorf("depth %d", got.Depth())
	}
	if _, err := ParseString(nested(DefaultMaxDepth)); err != nil {
		t.Errorf("at the limit: %v", err)
	}
	_, err = ParseString(nested(DefaultMaxDepth + 1))
	if !errors.Is(err, ErrRecursionLimit) {
		t.Errorf("expected ErrRecursionLimit, got %v", err)
	}
	var pErr *Error
	if errors.As(err, &pErr) && pErr.Offset() != DefaultMaxDepth*len("<list>") {
		t.Errorf("limit reported at %d", pErr.Offset())
	}

	_, err = ParseString(nested(11), MaxDepth(10))
	if !errors.Is(err, ErrRecursionLimit) {
		t.Errorf("expected ErrRecursionLimit, got %v", err)
	}
	if _, err := ParseString(nested(10), MaxDepth(10)); err != nil {
		t.Error(err)
	}
	deepDict := strings.Repeat("<dict><k>", 20) + "<none>None</none>" + strings.Repeat("</k></dict>", 20)
	if _, err := ParseString(deepDict, MaxDepth(19)); !errors.Is(err, ErrRecursionLimit) {
		t.Errorf("dict nesting: %v", err)
	}
	if _, err := ParseString(deepDict, MaxDepth(0)); err != nil {
		t.Errorf("unlimited: %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	in := "<list><int>1</int><dict><a><str>x</str></a></dict></list>"
	node, err := ParseString(in, ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 4 {
		t.Fatalf("tracked %d positions", len(positions))
	}
	want := map[*ir.Node]int{
		node:                     0,
		node.Values[0]:           6,
		node.Values[1]:           18,
		node.Values[1].Values[0]: 27,
	}
	for n, off := range want {
		if p := positions[n]; p == nil || p.I != off {
			t.Errorf("%s at %v, want %d", n.Path(), p, off)
		}
	}
	if GetPositions(ParsePositions(positions)) == nil {
		t.Error("GetPositions")
	}
}
