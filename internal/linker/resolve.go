package linker

import (
	"strings"

	"weld/internal/ast"
)

// Resolve resolves a dotted name starting at the environment root scope.
func (e *Environment) Resolve(name string) (ast.NodeID, bool) {
	return e.resolveIn(e.ScopeOf(e.Root), name, true)
}

// ResolveFrom resolves a dotted name starting at the given node's scope.
func (e *Environment) ResolveFrom(node ast.NodeID, name string) (ast.NodeID, bool) {
	return e.resolveIn(e.ScopeOf(node), name, true)
}

// resolveIn resolves the first segment per the lookup order, then treats
// any remaining dotted suffix as strict member access inside the found
// node's own scope: continuation never re-enters the lexical, included,
// or outward search. Absence is a normal outcome, never an error.
func (e *Environment) resolveIn(scope ScopeID, qualified string, allowLookup bool) (ast.NodeID, bool) {
	head, rest, _ := strings.Cut(qualified, ".")
	id, ok := e.resolveSegment(scope, head, allowLookup)
	if !ok {
		return ast.NoNodeID, false
	}
	if rest == "" {
		return id, true
	}
	return e.resolveIn(e.ScopeOf(id), rest, false)
}

// resolveSegment implements the single-segment lookup order: own
// contributions first; then each included scope in list order, asked for
// its own contributions only (one hop, no recursion into a second level
// of inclusion); then the lexical container, continuing the outward walk.
func (e *Environment) resolveSegment(scope ScopeID, segment string, allowLookup bool) (ast.NodeID, bool) {
	sc := e.Scopes.Get(scope)
	if sc == nil {
		return ast.NoNodeID, false
	}
	if name, known := e.Tree.Strings.Find(segment); known {
		if id, ok := sc.Contributions[name]; ok {
			return id, true
		}
	}
	if !allowLookup {
		return ast.NoNodeID, false
	}
	for _, inc := range sc.Included {
		if id, ok := e.resolveSegment(inc, segment, false); ok {
			return id, true
		}
	}
	return e.resolveSegment(sc.Container, segment, true)
}
