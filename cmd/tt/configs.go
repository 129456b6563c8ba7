package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode tagged text with color'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting depth when decoding, 0 for no limit' default=1000"`

	T bool `cli:"name=t aliases=tagtext desc='do i/o in tagged text'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat returns the format selected by -t, -j or -y.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.T:
		return format.TagTextFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return 0, false
}

// inFormat is the input format: -I, then -t/-j/-y, then def.
func (cfg *MainConfig) inFormat(def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return def
}

// outFormat is the output format: -O, then -t/-j/-y, then def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return def
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxDepth(cfg.MaxDepth)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	if cfg.colorSet() {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

// colorSet reports whether -color was given explicitly.
func (cfg *MainConfig) colorSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

type EncodeConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='fail on keys and strings that cannot be decoded back'"`

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig

	Decode *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='also check that documents re-encode strictly'"`
	Quiet  bool `cli:"name=q desc='only set the exit status'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Node    bool `cli:"name=n desc='print the diff as a document rather than lines'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Match bool `cli:"name=m desc='print only documents for which the expression is true'"`
	Vars  map[string]any

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Op  string `cli:"name=op desc='patch operation: json-patch, merge-patch, strpatch or eval' default=merge-patch"`
	Ops bool   `cli:"name=ops desc='show available patch operations'"`

	Patch *cli.Command
}

type BenchConfig struct {
	*MainConfig
	N    int  `cli:"name=n desc='number of round trips per document' default=1000"`
	Gops bool `cli:"name=gops desc='start a gops agent while benchmarking'"`

	Bench *cli.Command
}
