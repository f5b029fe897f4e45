// Package linker merges file-scoped syntax trees into one globally
// addressable program model and computes the scope graph over it, so that
// qualified and unqualified names can be resolved by later stages.
package linker

import (
	"fmt"

	"fortio.org/safecast"

	"weld/internal/ast"
	"weld/internal/ident"
)

// Hints provide capacity suggestions for the linked environment.
type Hints struct{ Nodes, Scopes uint }

// Hierarchy yields the linearized supertype list of a module: the module
// itself first, then its ancestors in resolution order. Linearization is
// computed outside the linker; the supplied order is trusted as-is, with
// no cycle or consistency checking here.
type Hierarchy interface {
	Linearized(env *Environment, module ast.NodeID) []ast.NodeID
}

// Options configures one Link call.
type Options struct {
	// GlobalPackages lists, in order, the dotted names of library
	// packages whose direct members become visible unqualified
	// everywhere, without an explicit import.
	GlobalPackages []string

	// Hierarchy supplies module linearizations. Leaving it nil links
	// modules without inherited visibility.
	Hierarchy Hierarchy

	// Generator issues node identities. Defaults to a fresh counter per
	// call; uniqueness within the resulting environment is the only
	// requirement.
	Generator ident.Generator

	Hints Hints
}

// Link merges freshly parsed top-level packages into an optional base
// environment and computes the scope graph over the result.
//
// The base environment is never mutated. The result is a brand-new tree
// in which every node, including ones untouched by the merge, carries a
// fresh identity; identities from the base never survive a relink.
// newTree must share its interner (and file table) with the base, which
// holds automatically when one loader session produced both.
//
// Link is not safe for concurrent use against the same base environment.
func Link(newTree *ast.Tree, newPackages []ast.NodeID, base *Environment, opts Options) *Environment {
	if opts.Generator == nil {
		opts.Generator = &ident.Counter{}
	}

	var members []pending
	if base != nil {
		for _, m := range base.Tree.Get(base.Root).Members {
			members = append(members, pending{ref: ref{tree: base.Tree, id: m}})
		}
	}
	for _, pkg := range newPackages {
		members = mergeInto(members, ref{tree: newTree, id: pkg})
	}

	nodeHint := opts.Hints.Nodes
	if nodeHint == 0 {
		nodeHint = uint(newTree.Len())
		if base != nil {
			nodeHint += uint(base.Tree.Len())
		}
	}
	dst := ast.NewTree(newTree.Strings, nodeHint)

	a := assigner{dst: dst, gen: opts.Generator}
	rootMembers := make([]ast.NodeID, 0, len(members))
	for _, m := range members {
		rootMembers = append(rootMembers, a.copyPending(m))
	}
	root := dst.New(ast.Node{
		Kind:    ast.KindEnvironment,
		Members: rootMembers,
		UID:     opts.Generator.Next(),
	})
	dst.Root = root

	scopeHint := opts.Hints.Scopes
	if scopeHint == 0 {
		scopeHint = uint(dst.Len())
	}
	scopeCap, err := safecast.Conv[uint32](scopeHint)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}

	env := &Environment{
		Tree:   dst,
		Root:   root,
		Scopes: NewScopes(scopeCap),
		byUID:  make(map[ident.UID]ast.NodeID, dst.Len()),
		gen:    opts.Generator,
	}
	env.stamp()

	b := scopeBuilder{env: env, opts: opts}
	b.createScopes()
	b.wireVisibility()
	return env
}
