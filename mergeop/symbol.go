package mergeop

import "github.com/signadot/tagtext/ir"

type Symbol interface {
	String() string
	Instance(child *ir.Node) (Op, error)
}

type Op interface {
	Patch(doc *ir.Node) (*ir.Node, error)
	String() string
}

type name string

func (s name) String() string {
	return string(s)
}

type op struct {
	name  name
	child *ir.Node
}

func (o op) String() string {
	return o.name.String()
}
