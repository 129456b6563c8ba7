package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"tt":      TagTextFormat,
		"tagtext": TagTextFormat,
		"j":       JSONFormat,
		"yaml":    YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
}

func TestFromSuffix(t *testing.T) {
	cases := []struct {
		name string
		f    Format
		ok   bool
	}{
		{"doc.tt", TagTextFormat, true},
		{"a/b.json", JSONFormat, true},
		{"c.yml", YAMLFormat, true},
		{"c.yaml", YAMLFormat, true},
		{"README", 0, false},
	}
	for _, c := range cases {
		f, ok := FromSuffix(c.name)
		if ok != c.ok || f != c.f {
			t.Errorf("%s: got (%s, %t) want (%s, %t)", c.name, f, ok, c.f, c.ok)
		}
	}
}
