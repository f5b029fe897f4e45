package linker

import (
	"weld/internal/ast"
)

// AttachSentence links one freshly parsed sentence subtree into the scope
// of context, a node already belonging to this environment, without
// re-running the full pipeline. The sentence is copied in with fresh
// identities. Its nodes receive scopes threaded sequentially: each node's
// scope nests inside the previous node's, so within the sentence later
// nodes see earlier bindings, and a second attached sentence starts a new
// chain that never leaks into the first.
//
// The environment is mutated in place; nothing outside the sentence is
// re-stamped. Returns the attached top node.
func (e *Environment) AttachSentence(src *ast.Tree, sentence, context ast.NodeID) ast.NodeID {
	a := assigner{dst: e.Tree, gen: e.gen}
	top := a.copyNode(ref{tree: src, id: sentence})

	contextScope := e.ScopeOf(context)
	if n := e.Tree.Get(top); n.Kind.Referenceable() && n.Name.IsValid() {
		e.register(contextScope, n.Name, top)
	}

	running := contextScope
	e.Tree.Walk(top, context, func(id, parent ast.NodeID) {
		n := e.Tree.Get(id)
		scope := e.Scopes.New(running)
		e.setScope(id, scope)
		if n.Kind.Referenceable() && n.Name.IsValid() {
			e.Scopes.Get(scope).Contributions[n.Name] = id
		}
		e.byUID[n.UID] = id
		n.Parent = parent
		running = scope
	})
	return top
}
