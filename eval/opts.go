package eval

type EvalOption func(*evalOpts)

type evalOpts struct {
	vars map[string]any
}

// Vars adds variables to the expression environment.  A variable named doc
// is shadowed by the document.
func Vars(vars map[string]any) EvalOption {
	return func(o *evalOpts) {
		if o.vars == nil {
			o.vars = make(map[string]any, len(vars))
		}
		for k, v := range vars {
			o.vars[k] = v
		}
	}
}
