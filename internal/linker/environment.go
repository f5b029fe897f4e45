package linker

import (
	"strings"

	"weld/internal/ast"
	"weld/internal/ident"
	"weld/internal/source"
)

// Environment is the root of a fully linked program model: the merged
// tree, the scope graph computed over it, and the identity index. One
// environment must only be used from a single goroutine at a time;
// linking and attaching mutate shared maps in place.
type Environment struct {
	Tree   *ast.Tree
	Root   ast.NodeID
	Scopes *Scopes

	scopeOf []ScopeID // indexed by NodeID
	byUID   map[ident.UID]ast.NodeID
	gen     ident.Generator
}

// ScopeOf returns the scope owned by the node, or NoScopeID before the
// scope builder ran over it.
func (e *Environment) ScopeOf(id ast.NodeID) ScopeID {
	if int(id) >= len(e.scopeOf) {
		return NoScopeID
	}
	return e.scopeOf[id]
}

func (e *Environment) setScope(id ast.NodeID, scope ScopeID) {
	for int(id) >= len(e.scopeOf) {
		e.scopeOf = append(e.scopeOf, NoScopeID)
	}
	e.scopeOf[id] = scope
}

// NodeByUID returns the node carrying the given identity.
func (e *Environment) NodeByUID(uid ident.UID) (ast.NodeID, bool) {
	id, ok := e.byUID[uid]
	return id, ok
}

// register installs name→node into the scope's contributions. The first
// registration under a name wins, with one exception: a test-file package
// is silently superseded by a later non-test package of the same name.
func (e *Environment) register(scope ScopeID, name source.StringID, id ast.NodeID) {
	sc := e.Scopes.Get(scope)
	if sc == nil || !name.IsValid() {
		return
	}
	if prev, taken := sc.Contributions[name]; taken {
		prevNode := e.Tree.Get(prev)
		next := e.Tree.Get(id)
		supersedes := prevNode.Kind == ast.KindPackage && prevNode.Test &&
			next.Kind == ast.KindPackage && !next.Test
		if !supersedes {
			return
		}
	}
	sc.Contributions[name] = id
}

// stamp runs the total post-copy traversal of the final tree: every node
// lands in the identity index and receives its parent back-reference.
// Nodes untouched by the merge are refreshed too.
func (e *Environment) stamp() {
	e.Tree.Walk(e.Root, ast.NoNodeID, func(id, parent ast.NodeID) {
		n := e.Tree.Get(id)
		e.byUID[n.UID] = id
		if parent.IsValid() {
			n.Parent = parent
		}
	})
}

// FullName returns the dotted path of named ancestors down to the node,
// e.g. "animals.Dog.energy". Unnamed nodes contribute nothing.
func (e *Environment) FullName(id ast.NodeID) string {
	var parts []string
	for id.IsValid() {
		n := e.Tree.Get(id)
		if n == nil {
			break
		}
		if name, ok := e.Tree.Strings.Lookup(n.Name); ok && name != "" {
			parts = append(parts, name)
		}
		id = n.Parent
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}
