package bridge

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/parse"

	"github.com/goccy/go-yaml"
)

// ToAny converts node to plain Go values: nil, bool, int64, float64,
// string, []any and yaml.MapSlice.
func ToAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.DictType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f, Value: ToAny(node.Values[i])}
		}
		return res
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.IntType:
		return node.Int64
	case ir.FloatType:
		return node.Float64
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// ToJSONAny is like ToAny but renders dicts as map[string]any, the form
// expression engines and encoding/json understand.  Member order is lost.
func ToJSONAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.DictType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f] = ToJSONAny(node.Values[i])
		}
		return res
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToJSONAny(v)
		}
		return res
	default:
		return ToAny(node)
	}
}

// FromAny builds a node from v.  Maps with string keys are sorted; use
// yaml.MapSlice to keep a given order.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		res := ir.FromSlice(nil)
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(n)
		}
		return res, nil
	case []*ir.Node:
		res := ir.FromSlice(nil)
		for _, elt := range x {
			res.Append(elt.Clone())
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.FromKeyVals(nil)
		for _, item := range x {
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", item.Key, err)
			}
			res.Set(keyString(item.Key), n)
		}
		return res, nil
	case map[string]any:
		res := ir.FromKeyVals(nil)
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Set(k, n)
		}
		return res, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[keyString(k)] = v
		}
		return FromAny(m)
	case map[string]*ir.Node:
		res := ir.FromKeyVals(nil)
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res.Set(k, x[k].Clone())
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func fromUint(u uint64) (*ir.Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", ErrRange, u)
	}
	return ir.FromInt(int64(u)), nil
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// Decode reads one document in format f.  Trailing line endings after a
// tagged-text document are ignored.
func Decode(d []byte, f format.Format) (*ir.Node, error) {
	switch f {
	case format.TagTextFormat:
		return parse.Parse(bytes.TrimRight(d, "\r\n"))
	case format.JSONFormat, format.YAMLFormat:
		var v any
		if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", f, err)
		}
		return FromAny(v)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

// Encode writes node to w in format f followed by a newline.  The encode
// options apply to tagged text only.
func Encode(node *ir.Node, w io.Writer, f format.Format, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.TagTextFormat:
		if err := encode.Encode(node, w, opts...); err != nil {
			return err
		}
		_, err := w.Write([]byte{'\n'})
		return err
	case format.JSONFormat:
		d, err = MarshalJSON(node)
	case format.YAMLFormat:
		d, err = yaml.Marshal(ToAny(node))
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	d = append(bytes.TrimRight(d, "\n"), '\n')
	_, err = w.Write(d)
	return err
}

// MarshalJSON renders node as JSON with dict members in order.  Non finite
// floats have no JSON form and are an error.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	if node == nil {
		node = ir.Null()
	}
	err := node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if y.Type == ir.FloatType && (math.IsInf(y.Float64, 0) || math.IsNaN(y.Float64)) {
			return false, fmt.Errorf("%w: %s is %s", ErrNotJSON, y.Path(), encode.MustString(y))
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return yaml.MarshalWithOptions(ToAny(node), yaml.JSON())
}
