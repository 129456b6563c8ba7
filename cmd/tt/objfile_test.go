package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/parse"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeDocs(t *testing.T) {
	cfg := &MainConfig{MaxDepth: 2}
	docs, err := decodeDocs(cfg, []byte("<int>1</int>\n---\n<list><str>a</str></list>\n"), format.TagTextFormat)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, doc := range docs {
		got = append(got, encode.MustString(doc))
	}
	want := []string{"<int>1</int>", "<list><str>a</str></list>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}

	_, err = decodeDocs(cfg, []byte("<list><list><list></list></list></list>"), format.TagTextFormat)
	if !errors.Is(err, parse.ErrRecursionLimit) {
		t.Errorf("got %v", err)
	}

	docs, err = decodeDocs(cfg, []byte(`{"a": [1, 2]}`), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || encode.MustString(docs[0]) != "<dict><a><list><int>1</int><int>2</int></list></a></dict>" {
		t.Errorf("got %v", docs)
	}
}

func TestDocWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	dw := (&MainConfig{}).docWriter(buf, format.JSONFormat)
	if err := dw.write(ir.FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if err := dw.write(ir.FromString("x")); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "1\n---\n\"x\"\n" {
		t.Errorf("got %q", got)
	}
}

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"limit=10", "a.b=[1, x]", "a.c=true"} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	a, ok := env["a"].(map[string]any)
	if !ok || a["c"] != true || len(a) != 2 {
		t.Errorf("got %v", env)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("accepted argument without =")
	}
	if err := envFunc(env, "a.c.d=1"); err == nil {
		t.Error("descended into a scalar")
	}
}
