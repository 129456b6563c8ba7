package main

import (
	"testing"

	"github.com/signadot/tagtext/gomap"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/parse"
)

func TestBenchDoc(t *testing.T) {
	doc, err := parse.ParseString("<dict><a><list><int>1</int><str>x</str></list></a></dict>")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &BenchConfig{MainConfig: &MainConfig{}, N: 3}
	res, err := benchDoc(cfg, doc)
	if err != nil {
		t.Fatal(err)
	}
	if res.N != 3 || res.Depth != doc.Depth() || res.Bytes != len("<dict><a><list><int>1</int><str>x</str></list></a></dict>") {
		t.Errorf("got %+v", res)
	}
	node, err := gomap.ToIR(res)
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 8 || node.Fields[0] != "bytes" || ir.Get(node, "decode_mb_s") == nil {
		t.Errorf("got fields %v", node.Fields)
	}
}
