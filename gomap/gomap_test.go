package gomap

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/parse"

	"github.com/google/go-cmp/cmp"
)

type item struct {
	Name   string   `json:"name"`
	Count  int      `json:"count,omitempty"`
	Ratio  float64  `json:"ratio"`
	Tags   []string `json:"tags"`
	Parent *item    `json:"parent"`
}

type celsius float64

func (c celsius) ToIR() (*ir.Node, error) {
	return ir.FromKeyVals([]ir.KeyVal{{Key: "c", Val: ir.FromFloat(float64(c))}}), nil
}

func (c *celsius) FromIR(node *ir.Node) error {
	v := ir.Get(node, "c")
	if v == nil || v.Type != ir.FloatType {
		return errors.New("expected c")
	}
	*c = celsius(v.Float64)
	return nil
}

func TestDump(t *testing.T) {
	d, err := Dump(item{Name: "a", Ratio: 2.5, Tags: []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	want := "<dict><name><str>a</str></name><ratio><float>2.5</float></ratio>" +
		"<tags><list><str>x</str></list></tags><parent><none>None</none></parent></dict>"
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
}

func TestLoad(t *testing.T) {
	in := item{
		Name:   "a",
		Count:  3,
		Ratio:  0.5,
		Tags:   []string{"x", "y"},
		Parent: &item{Name: "root", Ratio: 1.25, Tags: []string{"r"}},
	}
	d, err := Dump(in)
	if err != nil {
		t.Fatal(err)
	}
	out := item{}
	if err := Load(d, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Error(diff)
	}
}

func TestLoadErrors(t *testing.T) {
	out := item{}
	if err := Load([]byte("<dict><name><str>a</str></name>"), &out); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v", err)
	}
	err := Load([]byte("<dict><bogus><int>1</int></bogus></dict>"), &out)
	if err == nil || !strings.Contains(err.Error(), "mapping into") {
		t.Errorf("got %v", err)
	}
}

func TestIRer(t *testing.T) {
	d, err := Dump(celsius(21.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "<dict><c><float>21.5</float></c></dict>" {
		t.Errorf("got %s", d)
	}
	var c celsius
	if err := Load(d, &c); err != nil {
		t.Fatal(err)
	}
	if c != 21.5 {
		t.Errorf("got %v", c)
	}
	if err := Load([]byte("<int>1</int>"), &c); err == nil {
		t.Error("loaded int into celsius")
	}
}
