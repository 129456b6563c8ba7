package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	ListType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		IntType:    "Int",
		FloatType:  "Float",
		StringType: "String",
		ListType:   "List",
		DictType:   "Dict",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Tag returns the wire tag name for t, or "" if t is not a valid type.
func (t Type) Tag() string {
	switch t {
	case NullType:
		return "none"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case StringType:
		return "str"
	case ListType:
		return "list"
	case DictType:
		return "dict"
	}
	return ""
}

// TypeFromTag maps a wire tag name to its type.
func TypeFromTag(tag string) (Type, bool) {
	switch tag {
	case "none":
		return NullType, true
	case "bool":
		return BoolType, true
	case "int":
		return IntType, true
	case "float":
		return FloatType, true
	case "str":
		return StringType, true
	case "list":
		return ListType, true
	case "dict":
		return DictType, true
	}
	return 0, false
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Float":  FloatType,
		"String": StringType,
		"List":   ListType,
		"Dict":   DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		ListType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictType:
		return false
	default:
		return true
	}
}
