package mergeop

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	symMu   sync.RWMutex
	symbols = map[string]Symbol{}
)

func init() {
	for _, sym := range []Symbol{JSONPatchSym(), MergePatchSym(), StrPatchSym(), EvalSym()} {
		if err := Register(sym); err != nil {
			panic(err)
		}
	}
}

// Register adds sym under its name.  Names are unique.
func Register(sym Symbol) error {
	symMu.Lock()
	defer symMu.Unlock()
	nm := sym.String()
	if _, present := symbols[nm]; present {
		return fmt.Errorf("%w: %q already registered", ErrPatch, nm)
	}
	symbols[nm] = sym
	return nil
}

// Lookup returns the symbol registered as nm, or nil.
func Lookup(nm string) Symbol {
	symMu.RLock()
	defer symMu.RUnlock()
	return symbols[strings.TrimPrefix(nm, "!")]
}

// Symbols returns all registered symbols sorted by name.
func Symbols() []Symbol {
	symMu.RLock()
	defer symMu.RUnlock()
	res := make([]Symbol, 0, len(symbols))
	for _, sym := range symbols {
		res = append(res, sym)
	}
	slices.SortFunc(res, func(a, b Symbol) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
