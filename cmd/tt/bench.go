package main

import (
	"fmt"
	"time"

	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/gomap"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/parse"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func bench(cfg *BenchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.N <= 0 {
		return fmt.Errorf("%w: -n must be positive, got %d", cli.ErrUsage, cfg.N)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	dw := cfg.docWriter(cc.Out, cfg.outFormat(format.TagTextFormat))
	return forEachDoc(cfg.MainConfig, cc, args, cfg.inFormat(format.TagTextFormat), func(file string, i int, doc *ir.Node) error {
		res, err := benchDoc(cfg, doc)
		if err != nil {
			return fmt.Errorf("error benchmarking %s document %d: %w", file, i, err)
		}
		res.File = file
		res.Doc = i
		node, err := gomap.ToIR(res)
		if err != nil {
			return err
		}
		return dw.write(node)
	})
}

type benchResult struct {
	Bytes      int     `json:"bytes"`
	Depth      int     `json:"depth"`
	N          int     `json:"n"`
	EncodeNsOp int64   `json:"encode_ns_op"`
	DecodeNsOp int64   `json:"decode_ns_op"`
	DecodeMBs  float64 `json:"decode_mb_s"`
	File       string  `json:"file"`
	Doc        int     `json:"doc"`
}

// benchDoc times cfg.N encodes and decodes of doc and checks that the last
// decode gives doc back.
func benchDoc(cfg *BenchConfig, doc *ir.Node) (*benchResult, error) {
	var (
		text string
		err  error
	)
	start := time.Now()
	for range cfg.N {
		text, err = encode.EncodeString(doc)
		if err != nil {
			return nil, err
		}
	}
	encDur := time.Since(start)

	var back *ir.Node
	d := []byte(text)
	start = time.Now()
	for range cfg.N {
		back, err = parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return nil, err
		}
	}
	decDur := max(time.Since(start), time.Nanosecond)
	if !ir.Equal(doc, back) {
		return nil, fmt.Errorf("round trip changed the document")
	}
	n := int64(cfg.N)
	return &benchResult{
		Bytes:      len(d),
		Depth:      doc.Depth(),
		N:          cfg.N,
		EncodeNsOp: encDur.Nanoseconds() / n,
		DecodeNsOp: decDur.Nanoseconds() / n,
		DecodeMBs:  float64(len(d)) * float64(n) / decDur.Seconds() / 1e6,
	}, nil
}
