// Package hierarchy computes the default supertype linearization consumed
// by the linker. The linker treats linearization as an external input, so
// alternative schemes can be swapped in through the linker.Hierarchy
// interface without touching scope construction.
package hierarchy

import (
	"weld/internal/ast"
	"weld/internal/linker"
)

// Linearizer produces the module itself followed by its ancestors,
// depth-first over the declared supertypes, keeping each module at its
// first position. Supertype references resolve through the lexical
// scopes built by pass one, which is complete by the time the linker
// asks for a linearization.
type Linearizer struct{}

func (Linearizer) Linearized(env *linker.Environment, module ast.NodeID) []ast.NodeID {
	seen := make(map[ast.NodeID]bool)
	var out []ast.NodeID

	var visit func(id ast.NodeID)
	visit = func(id ast.NodeID) {
		if seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
		for _, super := range env.Tree.Get(id).Supertypes {
			target := env.Tree.Get(super).Target
			if !target.IsValid() {
				continue
			}
			name := env.Tree.Name(target)
			if name == "" {
				continue
			}
			ancestor, ok := env.ResolveFrom(target, name)
			if !ok {
				continue // unresolved supertypes are a validation concern
			}
			if env.Tree.Get(ancestor).Kind == ast.KindModule {
				visit(ancestor)
			}
		}
	}
	visit(module)
	return out
}
