package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TagTextFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"tt":      TagTextFormat,
		"tagtext": TagTextFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TagTextFormat:
		return []byte("tagtext"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsTagText() bool { return f == TagTextFormat }
func (f Format) IsJSON() bool    { return f == JSONFormat }
func (f Format) IsYAML() bool    { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TagTextFormat:
		return ".tt"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromSuffix guesses a format from a file name's extension.
func FromSuffix(name string) (Format, bool) {
	for _, f := range AllFormats() {
		if n, s := len(name), len(f.Suffix()); n > s && name[n-s:] == f.Suffix() {
			return f, true
		}
	}
	if n := len(name); n > 4 && name[n-4:] == ".yml" {
		return YAMLFormat, true
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TagTextFormat, JSONFormat, YAMLFormat}
}
