package linker

import (
	"maps"

	"weld/internal/ast"
)

// scopeBuilder runs the two scope-construction passes over a freshly
// stamped environment. Pass one creates and wires every node's scope;
// pass two wires the cross-cutting visibility that needs pass one
// complete: global libraries, imports, inherited scopes.
type scopeBuilder struct {
	env  *Environment
	opts Options
}

// createScopes gives every node its own scope, linked to the lexical
// container, and registers named declarations into their parent's scope
// as they are encountered in pre-order.
//
// Import nodes and references sitting directly under a parameterized type
// skip one nesting level: their container is the grandparent's scope, so
// an import does not resolve against its own package binding and a
// supertype reference does not resolve against the type application's
// own scope.
func (b *scopeBuilder) createScopes() {
	env := b.env
	t := env.Tree
	t.Walk(env.Root, ast.NoNodeID, func(id, parent ast.NodeID) {
		container := NoScopeID
		if parent.IsValid() {
			n := t.Get(id)
			p := t.Get(parent)
			skips := n.Kind == ast.KindImport ||
				(n.Kind == ast.KindReference && p.Kind == ast.KindParameterizedType)
			if skips {
				container = env.ScopeOf(p.Parent)
			} else {
				container = env.ScopeOf(parent)
			}
		}
		env.setScope(id, env.Scopes.New(container))

		if parent.IsValid() {
			n := t.Get(id)
			if n.Kind.Referenceable() && n.Name.IsValid() {
				env.register(env.ScopeOf(parent), n.Name, id)
			}
		}
	})
}

// wireVisibility runs pass two as two full sweeps. Globals and imports
// are wired everywhere before any ancestor inclusion, because the
// hierarchy collaborator resolves supertype references through the
// scopes at call time: a module's linearization must see every package
// already import-wired, wherever that module sits among the root
// members.
func (b *scopeBuilder) wireVisibility() {
	t := b.env.Tree
	t.Walk(b.env.Root, ast.NoNodeID, func(id, _ ast.NodeID) {
		switch t.Get(id).Kind {
		case ast.KindEnvironment:
			b.injectGlobals(id)
		case ast.KindPackage:
			b.wireImports(id)
		}
	})
	t.Walk(b.env.Root, ast.NoNodeID, func(id, _ ast.NodeID) {
		if t.Get(id).Kind == ast.KindModule {
			b.includeAncestors(id)
		}
	})
}

// injectGlobals registers the direct members of each configured library
// package into the root scope, in the configured order, making them
// visible unqualified everywhere. Library packages that are not part of
// this environment are skipped.
func (b *scopeBuilder) injectGlobals(root ast.NodeID) {
	env := b.env
	rootScope := env.ScopeOf(root)
	for _, name := range b.opts.GlobalPackages {
		target, ok := env.resolveIn(rootScope, name, true)
		if !ok {
			continue
		}
		for _, member := range env.Tree.Get(target).Members {
			if m := env.Tree.Get(member); m.Name.IsValid() {
				env.register(rootScope, m.Name, member)
			}
		}
	}
}

// wireImports resolves each import from the import node's own scope
// (which, by the container-skip rule, searches from the package's
// lexical scope) and includes the resulting view into the package scope.
// A generic import exposes the target's direct contributions, one level
// only; a plain import exposes just the target under its own name.
// Unresolved imports are skipped here and left to validation.
func (b *scopeBuilder) wireImports(pkg ast.NodeID) {
	env := b.env
	t := env.Tree
	var views []ScopeID
	for _, imp := range t.Get(pkg).Imports {
		in := t.Get(imp)
		name, ok := t.Strings.Lookup(in.Name)
		if !ok || name == "" {
			continue
		}
		target, found := env.resolveIn(env.ScopeOf(imp), name, true)
		if !found {
			continue
		}
		// Scopes.New may grow the arena and move every Scope, so no
		// *Scope is held across it; the view pointer below is refetched
		// per iteration and the package scope only after the last
		// allocation.
		inc := env.Scopes.New(NoScopeID)
		view := env.Scopes.Get(inc)
		if in.Generic {
			maps.Copy(view.Contributions, env.Scopes.Get(env.ScopeOf(target)).Contributions)
		} else {
			view.Contributions[t.Get(target).Name] = target
		}
		views = append(views, inc)
	}
	if len(views) == 0 {
		return
	}
	pkgScope := env.Scopes.Get(env.ScopeOf(pkg))
	pkgScope.Included = append(pkgScope.Included, views...)
}

// includeAncestors makes ancestor declarations visible from a module by
// including, in hierarchy order, the scope of every supertype after the
// first linearization element (the module itself).
func (b *scopeBuilder) includeAncestors(module ast.NodeID) {
	if b.opts.Hierarchy == nil {
		return
	}
	env := b.env
	ancestors := b.opts.Hierarchy.Linearized(env, module)
	scope := env.Scopes.Get(env.ScopeOf(module))
	for i, ancestor := range ancestors {
		if i == 0 {
			continue
		}
		scope.Included = append(scope.Included, env.ScopeOf(ancestor))
	}
}
