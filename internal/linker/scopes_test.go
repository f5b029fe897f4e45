package linker

import (
	"testing"

	"weld/internal/ast"
)

func TestQualifiedResolutionThroughMembers(t *testing.T) {
	f := newFixture()
	energy := f.tree.NewField(f.name("energy"))
	dog := f.module("Dog", nil, []ast.NodeID{energy})
	pkg := f.filePackage("animals", "animals.tree.json", false, nil, []ast.NodeID{dog})
	env := Link(f.tree, []ast.NodeID{pkg}, nil, Options{})

	id := mustResolve(t, env, "animals.Dog.energy")
	if got := env.Tree.Get(id).Kind; got != ast.KindField {
		t.Fatalf("resolved kind = %v, want field", got)
	}
	if got := env.FullName(id); got != "animals.Dog.energy" {
		t.Fatalf("FullName = %q", got)
	}
}

func TestDottedContinuationIsStrictMemberAccess(t *testing.T) {
	f := newFixture()
	bark := f.tree.NewMethod(f.name("bark"), nil)
	animal := f.module("Animal", nil, []ast.NodeID{bark})
	dog := f.module("Dog", []string{"Animal"}, nil)
	pkg := f.filePackage("p", "p.tree.json", false, nil, []ast.NodeID{animal, dog})
	env := Link(f.tree, []ast.NodeID{pkg}, nil, Options{
		Hierarchy: stubHierarchy{"Dog": {"p.Animal"}},
	})

	// Inherited members are visible from the module itself.
	dogID := mustResolve(t, env, "p.Dog")
	if _, ok := env.ResolveFrom(dogID, "bark"); !ok {
		t.Fatalf("bark not visible from Dog through its ancestors")
	}

	// But dotted access never walks the inherited scopes.
	mustResolve(t, env, "p.Animal.bark")
	mustNotResolve(t, env, "p.Dog.bark")
}

func TestGenericImportExposesDirectMembersOnly(t *testing.T) {
	f := newFixture()
	lib := f.filePackage("lib", "lib.tree.json", false, nil, []ast.NodeID{
		f.module("Base", nil, nil),
		f.namespacePackage("sub", []ast.NodeID{f.module("Deep", nil, nil)}),
	})
	p := f.filePackage("p", "p.tree.json", false,
		[]ast.NodeID{f.tree.NewImport(f.name("lib"), true)}, nil)
	env := Link(f.tree, []ast.NodeID{lib, p}, nil, Options{})

	pid := mustResolve(t, env, "p")
	if _, ok := env.ResolveFrom(pid, "Base"); !ok {
		t.Fatalf("generic import must expose the target's direct members")
	}
	if _, ok := env.ResolveFrom(pid, "sub"); !ok {
		t.Fatalf("sub-packages are direct members and must be exposed too")
	}
	if _, ok := env.ResolveFrom(pid, "Deep"); ok {
		t.Fatalf("generic import must not flatten nested members")
	}
}

func TestPlainImportExposesOnlyTheEntity(t *testing.T) {
	f := newFixture()
	lib := f.filePackage("lib", "lib.tree.json", false, nil, []ast.NodeID{
		f.module("Base", nil, nil),
		f.module("Other", nil, nil),
	})
	p := f.filePackage("p", "p.tree.json", false,
		[]ast.NodeID{f.tree.NewImport(f.name("lib.Base"), false)}, nil)
	env := Link(f.tree, []ast.NodeID{lib, p}, nil, Options{})

	pid := mustResolve(t, env, "p")
	if _, ok := env.ResolveFrom(pid, "Base"); !ok {
		t.Fatalf("imported entity not visible")
	}
	if _, ok := env.ResolveFrom(pid, "Other"); ok {
		t.Fatalf("siblings of the imported entity must stay invisible")
	}
}

func TestImportResolvesOutsideItsOwnPackage(t *testing.T) {
	f := newFixture()
	// The importing package declares a module that shares the imported
	// package's name. The import must look past its own scope and bind
	// the top-level package, not the shadowing member.
	outer := f.filePackage("lib", "lib.tree.json", false, nil, []ast.NodeID{
		f.module("Base", nil, nil),
	})
	p := f.filePackage("p", "p.tree.json", false,
		[]ast.NodeID{f.tree.NewImport(f.name("lib"), true)},
		[]ast.NodeID{f.module("lib", nil, nil)})
	env := Link(f.tree, []ast.NodeID{outer, p}, nil, Options{})

	pid := mustResolve(t, env, "p")
	if _, ok := env.ResolveFrom(pid, "Base"); !ok {
		t.Fatalf("import bound the local member instead of the package")
	}
}

func TestImportViewsSurviveScopeArenaGrowth(t *testing.T) {
	// With no capacity hint the scope arena is sized to the node count,
	// so pass one fills it exactly and the first import view allocated
	// in pass two forces the backing array to move. Every package's
	// inclusion list must still land in the live scope afterwards.
	f := newFixture()
	lib := f.filePackage("lib", "lib.tree.json", false, nil,
		[]ast.NodeID{f.module("Base", nil, nil)})
	clients := []string{"p1", "p2", "p3", "p4"}
	packages := []ast.NodeID{lib}
	for _, name := range clients {
		packages = append(packages, f.filePackage(name, name+".tree.json", false,
			[]ast.NodeID{f.tree.NewImport(f.name("lib"), true)}, nil))
	}
	env := Link(f.tree, packages, nil, Options{})

	for _, name := range clients {
		pkg := mustResolve(t, env, name)
		sc := env.Scopes.Get(env.ScopeOf(pkg))
		if len(sc.Included) != 1 {
			t.Fatalf("%s: included scopes = %d, want 1", name, len(sc.Included))
		}
		if _, ok := env.ResolveFrom(pkg, "Base"); !ok {
			t.Fatalf("%s: imported member not visible", name)
		}
	}
}

func TestUnresolvedImportIsSkipped(t *testing.T) {
	f := newFixture()
	p := f.filePackage("p", "p.tree.json", false,
		[]ast.NodeID{f.tree.NewImport(f.name("no.such.pkg"), true)},
		[]ast.NodeID{f.module("M", nil, nil)})
	env := Link(f.tree, []ast.NodeID{p}, nil, Options{})

	mustResolve(t, env, "p.M")
}

func TestGlobalPackagesVisibleUnqualified(t *testing.T) {
	f := newFixture()
	std := f.filePackage("std", "std.tree.json", false, nil, []ast.NodeID{
		f.namespacePackage("lang", []ast.NodeID{f.module("Object", nil, nil)}),
	})
	dog := f.module("Dog", nil, nil)
	pkg := f.filePackage("p", "p.tree.json", false, nil, []ast.NodeID{dog})
	env := Link(f.tree, []ast.NodeID{std, pkg}, nil, Options{
		GlobalPackages: []string{"std.lang", "std.missing"},
	})

	obj := mustResolve(t, env, "Object")
	if env.FullName(obj) != "std.lang.Object" {
		t.Fatalf("FullName = %q", env.FullName(obj))
	}
	// Unqualified lookup reaches the root scope from anywhere.
	dogID := mustResolve(t, env, "p.Dog")
	if _, ok := env.ResolveFrom(dogID, "Object"); !ok {
		t.Fatalf("global not visible from a nested module")
	}
}

func TestTestPackageSupersededByRegular(t *testing.T) {
	f := newFixture()
	testPkg := f.filePackage("p", "p_test.tree.json", true, nil,
		[]ast.NodeID{f.module("Fixture", nil, nil)})
	realPkg := f.filePackage("p", "p.tree.json", false, nil,
		[]ast.NodeID{f.module("Real", nil, nil)})
	env := Link(f.tree, []ast.NodeID{testPkg, realPkg}, nil, Options{})

	// Both packages stay in the tree, but the name binds the non-test one.
	if got := memberNames(t, env, env.Root); len(got) != 2 {
		t.Fatalf("root members %v, want both packages", got)
	}
	mustResolve(t, env, "p.Real")
	mustNotResolve(t, env, "p.Fixture")
}

func TestRegularPackageNotSupersededByTest(t *testing.T) {
	f := newFixture()
	realPkg := f.filePackage("p", "p.tree.json", false, nil,
		[]ast.NodeID{f.module("Real", nil, nil)})
	testPkg := f.filePackage("p", "p_test.tree.json", true, nil,
		[]ast.NodeID{f.module("Fixture", nil, nil)})
	env := Link(f.tree, []ast.NodeID{realPkg, testPkg}, nil, Options{})

	mustResolve(t, env, "p.Real")
	mustNotResolve(t, env, "p.Fixture")
}

func TestSupertypeReferenceResolvesFromModuleScope(t *testing.T) {
	f := newFixture()
	animal := f.module("Animal", nil, nil)
	dog := f.module("Dog", []string{"Animal"}, nil)
	pkg := f.filePackage("p", "p.tree.json", false, nil, []ast.NodeID{animal, dog})
	env := Link(f.tree, []ast.NodeID{pkg}, nil, Options{})

	dogID := mustResolve(t, env, "p.Dog")
	sup := env.Tree.Get(dogID).Supertypes
	if len(sup) != 1 {
		t.Fatalf("supertypes = %d, want 1", len(sup))
	}
	refID := env.Tree.Get(sup[0]).Target
	got, ok := env.ResolveFrom(refID, env.Tree.Name(refID))
	if !ok {
		t.Fatalf("supertype reference did not resolve")
	}
	if env.FullName(got) != "p.Animal" {
		t.Fatalf("resolved %q, want p.Animal", env.FullName(got))
	}
}
