package ir

// Truth reports whether node is truthy: non-empty containers and strings,
// non-zero numbers and true.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case DictType:
		return len(node.Fields) != 0
	case ListType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case IntType:
		return node.Int64 != 0
	case FloatType:
		return node.Float64 != 0.0
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
