package ast

import (
	"weld/internal/source"
)

// Constructor helpers for the front-end loader and tests. None of them
// assign identities or parent links; that happens during linking.

func (t *Tree) NewEnvironment(members []NodeID) NodeID {
	id := t.New(Node{Kind: KindEnvironment, Members: members})
	t.Root = id
	return id
}

func (t *Tree) NewPackage(name source.StringID, file source.FileID, test bool, imports, members []NodeID) NodeID {
	return t.New(Node{
		Kind:    KindPackage,
		Name:    name,
		File:    file,
		Test:    test,
		Imports: imports,
		Members: members,
	})
}

func (t *Tree) NewModule(name source.StringID, supertypes, members []NodeID) NodeID {
	return t.New(Node{
		Kind:       KindModule,
		Name:       name,
		Supertypes: supertypes,
		Members:    members,
	})
}

// NewMethod creates a method whose members are its parameters followed by
// body sentences.
func (t *Tree) NewMethod(name source.StringID, members []NodeID) NodeID {
	return t.New(Node{Kind: KindMethod, Name: name, Members: members})
}

func (t *Tree) NewField(name source.StringID) NodeID {
	return t.New(Node{Kind: KindField, Name: name})
}

func (t *Tree) NewParameter(name source.StringID) NodeID {
	return t.New(Node{Kind: KindParameter, Name: name})
}

func (t *Tree) NewVariable(name source.StringID, value NodeID) NodeID {
	return t.New(Node{Kind: KindVariable, Name: name, Value: value})
}

// NewImport creates an import of the dotted target name. A generic import
// exposes all of the target's direct members instead of the target alone.
func (t *Tree) NewImport(target source.StringID, generic bool) NodeID {
	return t.New(Node{Kind: KindImport, Name: target, Generic: generic})
}

func (t *Tree) NewReference(name source.StringID) NodeID {
	return t.New(Node{Kind: KindReference, Name: name})
}

// NewSupertype wraps a reference into the ParameterizedType node a module
// lists its ancestors with.
func (t *Tree) NewSupertype(ref NodeID) NodeID {
	return t.New(Node{Kind: KindParameterizedType, Target: ref})
}

func (t *Tree) NewLiteral() NodeID {
	return t.New(Node{Kind: KindLiteral})
}

func (t *Tree) NewAssignment(target, value NodeID) NodeID {
	return t.New(Node{Kind: KindAssignment, Target: target, Value: value})
}
