package ast

import (
	"weld/internal/ident"
	"weld/internal/source"
)

// NodeKind enumerates every construct the linker understands. The set is
// closed on purpose: the merger and the scope builder switch exhaustively
// over it instead of probing nodes with runtime capability tests.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota
	KindEnvironment
	KindPackage
	KindModule
	KindMethod
	KindField
	KindParameter
	KindVariable
	KindImport
	KindReference
	KindParameterizedType
	KindLiteral
	KindAssignment
)

func (k NodeKind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindPackage:
		return "package"
	case KindModule:
		return "module"
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	case KindParameter:
		return "parameter"
	case KindVariable:
		return "variable"
	case KindImport:
		return "import"
	case KindReference:
		return "reference"
	case KindParameterizedType:
		return "parameterized type"
	case KindLiteral:
		return "literal"
	case KindAssignment:
		return "assignment"
	default:
		return "invalid"
	}
}

// Referenceable reports whether nodes of this kind contribute their name
// to the enclosing scope.
func (k NodeKind) Referenceable() bool {
	switch k {
	case KindPackage, KindModule, KindMethod, KindField, KindParameter, KindVariable:
		return true
	default:
		return false
	}
}

// Node is one element of a Tree. The record is a union across kinds;
// fields a kind does not use stay zero.
type Node struct {
	Kind NodeKind

	// Name is the declared name for declarations, or the referenced
	// (possibly dotted) name for references and imports.
	Name source.StringID

	// File and Test tag packages with the front-end file they came from.
	File source.FileID
	Test bool

	// Generic marks an import as a wildcard over the target's members.
	Generic bool

	// Members holds declarations for containers (environment, package,
	// module) and parameters followed by body sentences for methods.
	Members []NodeID

	// Imports holds a package's import declarations.
	Imports []NodeID

	// Supertypes holds a module's declared ancestors as
	// ParameterizedType nodes.
	Supertypes []NodeID

	// Target is the Reference under a ParameterizedType, or the
	// assignment target.
	Target NodeID

	// Value is a variable initializer or the assigned value.
	Value NodeID

	// Parent and UID are stamped during linking and are never set by the
	// front end.
	Parent NodeID
	UID    ident.UID
}

// Children appends the node's children to buf in traversal order:
// imports, supertypes, target, value, then members.
func (n *Node) Children(buf []NodeID) []NodeID {
	buf = append(buf, n.Imports...)
	buf = append(buf, n.Supertypes...)
	if n.Target.IsValid() {
		buf = append(buf, n.Target)
	}
	if n.Value.IsValid() {
		buf = append(buf, n.Value)
	}
	buf = append(buf, n.Members...)
	return buf
}
