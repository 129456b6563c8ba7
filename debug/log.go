package debug

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/ir"

	"github.com/goccy/go-yaml"
)

var out io.Writer = os.Stderr

// TagText wraps a node so that it prints as tagged text.
type TagText struct{ *ir.Node }

func (y TagText) String() string {
	s, err := encode.EncodeString(y.Node)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return s
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := yaml.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = "\n   |" + strings.ReplaceAll(strings.TrimRight(string(d), "\n"), "\n", "\n   |")
		case *ir.Node:
			args[i] = TagText{x}.String()
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// LogAny writes v to the debug output as a line of json.
func LogAny(v any) {
	d, err := yaml.MarshalWithOptions(v, yaml.JSON())
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append([]byte(strings.TrimRight(string(d), "\n")), '\n'))
}
