package linker

import (
	"weld/internal/ast"
	"weld/internal/source"
)

// Scope is the per-node lookup structure. Each node of a linked
// environment owns exactly one scope.
//
// Contributions map a name to the node declaring it in this scope.
// Included lists external scopes consulted in a single, non-transitive
// hop: import targets and linearized module ancestors. Container links to
// the lexically enclosing scope and is a pure navigation reference, never
// an ownership one.
type Scope struct {
	Contributions map[source.StringID]ast.NodeID
	Included      []ScopeID
	Container     ScopeID
}
