package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tagtext/bridge"
	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/parse"

	"github.com/scott-cotton/cli"
)

var docSep = []byte("\n---\n")

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

type parsedDoc struct {
	node *ir.Node
	err  error
}

// parseDocs splits tagged text on "---" lines and parses each document.
// A piece left with an unterminated tag is joined with the pieces after it
// until the join parses, so a "---" line inside a string payload does not
// split its document.  If no join parses, the piece's own error stands.
func parseDocs(cfg *MainConfig, d []byte) []parsedDoc {
	opts := cfg.parseOpts()
	segs := bytes.Split(bytes.TrimRight(d, "\r\n"), docSep)
	var res []parsedDoc
	for i := 0; i < len(segs); {
		node, err := parse.Parse(segs[i], opts...)
		next := i + 1
		if errors.Is(err, parse.ErrUnterminatedTag) {
			joined := segs[i]
			for j := i + 1; j < len(segs); j++ {
				joined = bytes.Join([][]byte{joined, segs[j]}, docSep)
				if n, jErr := parse.Parse(joined, opts...); jErr == nil {
					node, err, next = n, nil, j+1
					break
				}
			}
		}
		res = append(res, parsedDoc{node: node, err: err})
		i = next
	}
	return res
}

// decodeDocs decodes the documents in d.  Tagged text may hold several
// documents separated by "---" lines; json and yaml hold one.
func decodeDocs(cfg *MainConfig, d []byte, f format.Format) ([]*ir.Node, error) {
	if f != format.TagTextFormat {
		node, err := bridge.Decode(d, f)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{node}, nil
	}
	docs := parseDocs(cfg, d)
	res := make([]*ir.Node, len(docs))
	for i, doc := range docs {
		if doc.err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, doc.err)
		}
		res[i] = doc.node
	}
	return res, nil
}

// getObjFile decodes the single document in path.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string, f format.Format) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	docs, err := decodeDocs(cfg, d, f)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("expected 1 document in %s, got %d", path, len(docs))
	}
	return docs[0], nil
}

// forEachDoc calls fn on every document of every file in args, or of
// stdin if args is empty.
func forEachDoc(cfg *MainConfig, cc *cli.Context, args []string, f format.Format, fn func(file string, i int, doc *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		docs, err := decodeDocs(cfg, d, f)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		for i, doc := range docs {
			if err := fn(arg, i, doc); err != nil {
				return err
			}
		}
	}
	return nil
}

// docWriter writes documents to w in format f, separated by "---" lines.
type docWriter struct {
	w    io.Writer
	f    format.Format
	opts []encode.EncodeOption
	n    int
}

func (cfg *MainConfig) docWriter(w io.Writer, f format.Format) *docWriter {
	dw := &docWriter{w: w, f: f}
	if f == format.TagTextFormat {
		dw.opts = cfg.encOpts(w)
	}
	return dw
}

func (dw *docWriter) write(node *ir.Node, extra ...encode.EncodeOption) error {
	if dw.n > 0 {
		if _, err := dw.w.Write([]byte("---\n")); err != nil {
			return fmt.Errorf("error writing document %d: %w", dw.n, err)
		}
	}
	opts := append(dw.opts[:len(dw.opts):len(dw.opts)], extra...)
	if err := bridge.Encode(node, dw.w, dw.f, opts...); err != nil {
		return fmt.Errorf("error encoding result %d: %w", dw.n, err)
	}
	dw.n++
	return nil
}
