package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the path of y from its root, for example $.a[2].'b.c'.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case DictType:
		return FieldPath(y.Parent.Path(), y.ParentField)
	case ListType:
		return IndexPath(y.Parent.Path(), y.ParentIndex)
	default:
		panic("parent but not in container")
	}
}

// FieldPath extends path p with dict member f, quoting f when needed.
func FieldPath(p, f string) string {
	return p + "." + pathString(f)
}

func IndexPath(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}

type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	afterSubtree := false
	for x != nil {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !afterSubtree {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		afterSubtree = x.Subtree
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		return parseNext(rest, parent)
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		return parseNext(frag[i+2:], parent)
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseNext(rest string, parent *Path) error {
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	return "'" + strings.NewReplacer("\\", "\\\\", "'", "\\'").Replace(f) + "'"
}

// GetPath returns a copy of the node at yPath, or nil if a dict member on
// the path does not exist.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		if yp.Index != nil {
			if res.Type != ListType {
				return nil, fmt.Errorf("%w: expected list at %s, got %s", ErrPath, res.Path(), res.Type)
			}
			index := *yp.Index
			if index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrPath, index, len(res.Values))
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			if res.Type != DictType {
				return nil, fmt.Errorf("%w: expected dict at %s, got %s", ErrPath, res.Path(), res.Type)
			}
			res = Get(res, *yp.Field)
			if res == nil {
				return nil, nil
			}
			yp = yp.Next
			continue
		}
		if yp.Next != nil {
			return nil, fmt.Errorf("%w: unexpected next w/out index or field", ErrPath)
		}
		break
	}
	return detach(res.Clone()), nil
}

// ListPath appends copies of all nodes matching yPath to dst.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil || (yp.Field == nil && yp.Index == nil && !yp.IndexAll && !yp.Subtree && yp.Next == nil) {
		return append(dst, detach(y.Clone()))
	}
	if yp.Subtree {
		_ = y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = node.listPath(dst, yp.Next)
			return !node.Type.IsLeaf(), nil
		})
		return dst
	}
	switch y.Type {
	case DictType:
		if yp.Field == nil {
			return dst
		}
		if v := Get(y, *yp.Field); v != nil {
			dst = v.listPath(dst, yp.Next)
		}
		return dst
	case ListType:
		if yp.Index != nil {
			if idx := *yp.Index; idx < len(y.Values) {
				dst = y.Values[idx].listPath(dst, yp.Next)
			}
			return dst
		}
		if !yp.IndexAll {
			return dst
		}
		for _, yv := range y.Values {
			dst = yv.listPath(dst, yp.Next)
		}
		return dst
	default:
		return dst
	}
}

func detach(n *Node) *Node {
	n.Parent = nil
	n.ParentIndex = 0
	n.ParentField = ""
	return n
}
