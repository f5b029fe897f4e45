package linker

import (
	"testing"

	"weld/internal/ast"
	"weld/internal/source"
)

// fixture wraps one build tree the way a loader session would: a shared
// interner plus a file table for package tags.
type fixture struct {
	tree  *ast.Tree
	files *source.Files
}

func newFixture() *fixture {
	return &fixture{
		tree:  ast.NewTree(nil, 0),
		files: source.NewFiles(),
	}
}

func (f *fixture) name(s string) source.StringID { return f.tree.Strings.Intern(s) }

func (f *fixture) file(path string) source.FileID { return f.files.Add(path) }

// filePackage builds the file-tagged package a front-end document becomes.
func (f *fixture) filePackage(name, path string, test bool, imports, members []ast.NodeID) ast.NodeID {
	return f.tree.NewPackage(f.name(name), f.file(path), test, imports, members)
}

// namespacePackage builds an untagged package declared inside a file.
func (f *fixture) namespacePackage(name string, members []ast.NodeID) ast.NodeID {
	return f.tree.NewPackage(f.name(name), source.NoFileID, false, nil, members)
}

func (f *fixture) module(name string, supertypes []string, members []ast.NodeID) ast.NodeID {
	sup := make([]ast.NodeID, 0, len(supertypes))
	for _, s := range supertypes {
		sup = append(sup, f.tree.NewSupertype(f.tree.NewReference(f.name(s))))
	}
	return f.tree.NewModule(f.name(name), sup, members)
}

// memberNames lists the names of a node's direct members in order.
func memberNames(t *testing.T, env *Environment, id ast.NodeID) []string {
	t.Helper()
	n := env.Tree.Get(id)
	if n == nil {
		t.Fatalf("node %v not found", id)
	}
	out := make([]string, 0, len(n.Members))
	for _, m := range n.Members {
		out = append(out, env.Tree.Name(m))
	}
	return out
}

func mustResolve(t *testing.T, env *Environment, name string) ast.NodeID {
	t.Helper()
	id, ok := env.Resolve(name)
	if !ok {
		t.Fatalf("expected %q to resolve", name)
	}
	return id
}

func mustNotResolve(t *testing.T, env *Environment, name string) {
	t.Helper()
	if id, ok := env.Resolve(name); ok {
		t.Fatalf("expected %q to be absent, resolved to %v (%s)", name, id, env.FullName(id))
	}
}

// stubHierarchy maps a module name to the dotted names of its ancestors,
// standing in for the externally computed linearization.
type stubHierarchy map[string][]string

func (h stubHierarchy) Linearized(env *Environment, module ast.NodeID) []ast.NodeID {
	out := []ast.NodeID{module}
	for _, name := range h[env.Tree.Name(module)] {
		if id, ok := env.Resolve(name); ok {
			out = append(out, id)
		}
	}
	return out
}
