package linker

import (
	"weld/internal/ast"
	"weld/internal/ident"
)

// assigner materializes a merged member list into the final tree,
// assigning every node a fresh identity as it is copied. The whole tree
// is rebuilt on each link on purpose: identity stability across relinks
// is explicitly not part of the contract, and callers rely on that.
type assigner struct {
	dst *ast.Tree
	gen ident.Generator
}

func (a *assigner) copyPending(p pending) ast.NodeID {
	if p.merged == nil {
		return a.copyNode(p.ref)
	}
	mp := p.merged
	var imports []ast.NodeID
	if len(mp.imports) > 0 {
		imports = make([]ast.NodeID, 0, len(mp.imports))
		for _, imp := range mp.imports {
			imports = append(imports, a.copyNode(imp))
		}
	}
	members := make([]ast.NodeID, 0, len(mp.members))
	for _, m := range mp.members {
		members = append(members, a.copyPending(m))
	}
	return a.dst.New(ast.Node{
		Kind:    ast.KindPackage,
		Name:    mp.name,
		File:    mp.file,
		Test:    mp.test,
		Imports: imports,
		Members: members,
		UID:     a.gen.Next(),
	})
}

// copyNode deep-copies a subtree from its source tree into dst. Parent
// links are left unset here; the stamp pass wires them over the final
// tree in one total traversal.
func (a *assigner) copyNode(src ref) ast.NodeID {
	n := src.node()
	cp := ast.Node{
		Kind:    n.Kind,
		Name:    n.Name,
		File:    n.File,
		Test:    n.Test,
		Generic: n.Generic,
		UID:     a.gen.Next(),
	}
	cp.Imports = a.copyList(src.tree, n.Imports)
	cp.Supertypes = a.copyList(src.tree, n.Supertypes)
	if n.Target.IsValid() {
		cp.Target = a.copyNode(ref{tree: src.tree, id: n.Target})
	}
	if n.Value.IsValid() {
		cp.Value = a.copyNode(ref{tree: src.tree, id: n.Value})
	}
	cp.Members = a.copyList(src.tree, n.Members)
	return a.dst.New(cp)
}

func (a *assigner) copyList(t *ast.Tree, ids []ast.NodeID) []ast.NodeID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]ast.NodeID, 0, len(ids))
	for _, id := range ids {
		out = append(out, a.copyNode(ref{tree: t, id: id}))
	}
	return out
}
