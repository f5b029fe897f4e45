package linker

import (
	"weld/internal/ast"
	"weld/internal/source"
)

// ref addresses a node inside a specific tree, so the merger can mix
// members of the base environment with freshly parsed packages before
// anything is copied.
type ref struct {
	tree *ast.Tree
	id   ast.NodeID
}

func (r ref) node() *ast.Node { return r.tree.Get(r.id) }

// pending is one entry of a merged sibling list: either an existing node
// kept as-is, or a package synthesized from two versions of the same
// logical package. The copy pass materializes both forms.
type pending struct {
	ref    ref
	merged *mergedPackage
}

type mergedPackage struct {
	name source.StringID
	file source.FileID
	test bool

	// imports are taken wholly from the incoming side, never unioned.
	imports []ref
	members []pending
}

func (p pending) name() source.StringID {
	if p.merged != nil {
		return p.merged.name
	}
	return p.ref.node().Name
}

func (p pending) isPackage() bool {
	if p.merged != nil {
		return true
	}
	return p.ref.node().Kind == ast.KindPackage
}

func (p pending) file() source.FileID {
	if p.merged != nil {
		return p.merged.file
	}
	return p.ref.node().File
}

func (p pending) test() bool {
	if p.merged != nil {
		return p.merged.test
	}
	return p.ref.node().Test
}

// allMembers returns every member entry of a package as a fresh slice the
// caller may grow.
func (p pending) allMembers() []pending {
	if p.merged != nil {
		return append([]pending(nil), p.merged.members...)
	}
	n := p.ref.node()
	out := make([]pending, 0, len(n.Members))
	for _, m := range n.Members {
		out = append(out, pending{ref: ref{tree: p.ref.tree, id: m}})
	}
	return out
}

// packageMembers returns only the sub-package entries of a package.
func (p pending) packageMembers() []pending {
	all := p.allMembers()
	kept := make([]pending, 0, len(all))
	for _, m := range all {
		if m.isPackage() {
			kept = append(kept, m)
		}
	}
	return kept
}

// mergeInto folds one incoming member into the accumulated sibling list.
//
// A non-package member evicts any same-named sibling of any kind and goes
// to the end of the list. An incoming package matches an existing one
// only when both the name and the source-file tag agree: packages from
// different files never merge, which is what lets one logical package be
// split across files.
//
// On a match the replacement package keeps the existing test flag and
// takes imports wholly from the incoming side. Its members depend on what
// kind of package matched. A file-tagged package is the unit of
// recompilation: its direct declarations are replaced wholesale and only
// its sub-packages survive, recursively merged against the incoming
// ones. An untagged namespace package merges additively, so declarations
// contributed by other files stay in place.
func mergeInto(members []pending, incoming ref) []pending {
	in := incoming.node()

	if in.Kind != ast.KindPackage {
		out := make([]pending, 0, len(members)+1)
		for _, m := range members {
			if in.Name.IsValid() && m.name() == in.Name {
				continue
			}
			out = append(out, m)
		}
		return append(out, pending{ref: incoming})
	}

	for i, m := range members {
		if !m.isPackage() || m.name() != in.Name || m.file() != in.File {
			continue
		}
		merged := &mergedPackage{
			name:    in.Name,
			file:    in.File,
			test:    m.test(),
			imports: importRefs(incoming),
		}
		var acc []pending
		if in.File.IsValid() {
			acc = m.packageMembers()
		} else {
			acc = m.allMembers()
		}
		for _, child := range in.Members {
			acc = mergeInto(acc, ref{tree: incoming.tree, id: child})
		}
		merged.members = acc

		out := make([]pending, 0, len(members))
		out = append(out, members[:i]...)
		out = append(out, members[i+1:]...)
		return append(out, pending{merged: merged})
	}

	return append(members, pending{ref: incoming})
}

func importRefs(pkg ref) []ref {
	n := pkg.node()
	if len(n.Imports) == 0 {
		return nil
	}
	out := make([]ref, 0, len(n.Imports))
	for _, imp := range n.Imports {
		out = append(out, ref{tree: pkg.tree, id: imp})
	}
	return out
}
