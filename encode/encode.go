package encode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/token"
)

type EncState struct {
	strictKeys    bool
	strictStrings bool

	// number of enclosing lists and dicts
	inList, inDict int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as tagged text.  A nil node encodes as none.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if err := encode(node, bw, es); err != nil {
		return err
	}
	return bw.Flush()
}

func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encode(node *ir.Node, w *bufio.Writer, es *EncState) error {
	if node == nil {
		return writeScalar(w, es, ir.NullType, token.NoneLiteral)
	}
	switch node.Type {
	case ir.NullType:
		return writeScalar(w, es, ir.NullType, token.NoneLiteral)
	case ir.BoolType:
		return writeScalar(w, es, ir.BoolType, token.FormatBool(node.Bool))
	case ir.IntType:
		return writeScalar(w, es, ir.IntType, token.FormatInt(node.Int64))
	case ir.FloatType:
		return writeScalar(w, es, ir.FloatType, token.FormatFloat(node.Float64))
	case ir.StringType:
		if es.strictStrings {
			if err := checkString(node.String, es); err != nil {
				return err
			}
		}
		return writeScalar(w, es, ir.StringType, node.String)
	case ir.ListType:
		return encodeList(node, w, es)
	case ir.DictType:
		return encodeDict(node, w, es)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedType, node.Type)
	}
}

func encodeList(node *ir.Node, w *bufio.Writer, es *EncState) error {
	es.inList++
	defer func() { es.inList-- }()
	if err := writeTag(w, es, ir.ListType, TagColor, token.OpenTag(ir.ListType.Tag())); err != nil {
		return err
	}
	for _, v := range node.Values {
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeTag(w, es, ir.ListType, TagColor, token.CloseTag(ir.ListType.Tag()))
}

func encodeDict(node *ir.Node, w *bufio.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: dict with %d keys and %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	es.inDict++
	defer func() { es.inDict-- }()
	if err := writeTag(w, es, ir.DictType, TagColor, token.OpenTag(ir.DictType.Tag())); err != nil {
		return err
	}
	for i, key := range node.Fields {
		if es.strictKeys {
			if err := ir.ValidKey(key); err != nil {
				return err
			}
		}
		if err := writeTag(w, es, ir.DictType, FieldColor, token.OpenTag(key)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if err := writeTag(w, es, ir.DictType, FieldColor, token.CloseTag(key)); err != nil {
			return err
		}
	}
	return writeTag(w, es, ir.DictType, TagColor, token.CloseTag(ir.DictType.Tag()))
}

// checkString reports payloads the decoder cannot recover: a closing str
// tag ends the payload early, and container tags disturb the depth count of
// an enclosing list or dict.
func checkString(s string, es *EncState) error {
	bad := []string{token.CloseTag(ir.StringType.Tag())}
	if es.inList > 0 {
		bad = append(bad, token.OpenTag(ir.ListType.Tag()), token.CloseTag(ir.ListType.Tag()))
	}
	if es.inDict > 0 {
		bad = append(bad, token.OpenTag(ir.DictType.Tag()), token.CloseTag(ir.DictType.Tag()))
	}
	for _, b := range bad {
		if strings.Contains(s, b) {
			return fmt.Errorf("%w: %q contains %s", ErrAmbiguousString, s, b)
		}
	}
	return nil
}

func writeScalar(w *bufio.Writer, es *EncState, t ir.Type, payload string) error {
	if err := writeTag(w, es, t, TagColor, token.OpenTag(t.Tag())); err != nil {
		return err
	}
	if es.Color != nil {
		payload = es.Color(t, ValueColor, payload)
	}
	if _, err := w.WriteString(payload); err != nil {
		return err
	}
	return writeTag(w, es, t, TagColor, token.CloseTag(t.Tag()))
}

func writeTag(w *bufio.Writer, es *EncState, t ir.Type, attr ColorAttr, tag string) error {
	if es.Color != nil {
		tag = es.Color(t, attr, tag)
	}
	_, err := w.WriteString(tag)
	return err
}
