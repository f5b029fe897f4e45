package driver

// Document is the wire form of one front-end output file: the flattened
// syntax tree a parser emitted for a single source file, serialized as
// JSON or YAML. The driver deserializes documents and rebuilds them as
// linkable package nodes; it never sees source text.
type Document struct {
	// Package is the dotted name of the package the file contributes
	// to, e.g. "game.domain". Every segment above the innermost one is
	// a namespace package shared with other files.
	Package string `json:"package" yaml:"package" msgpack:"package"`

	// Test marks the file as test-only. A test file's package binding
	// yields to a regular package of the same name.
	Test bool `json:"test,omitempty" yaml:"test,omitempty" msgpack:"test"`

	Imports      []Import `json:"imports,omitempty" yaml:"imports,omitempty" msgpack:"imports"`
	Declarations []Decl   `json:"declarations,omitempty" yaml:"declarations,omitempty" msgpack:"declarations"`
}

// Import names an entity or package pulled into the file's package
// scope. All widens the import to every direct member of the target.
type Import struct {
	Target string `json:"target" yaml:"target" msgpack:"target"`
	All    bool   `json:"all,omitempty" yaml:"all,omitempty" msgpack:"all"`
}

// Decl is one node of the serialized tree. Kind selects which of the
// remaining fields are meaningful.
type Decl struct {
	Kind string `json:"kind" yaml:"kind" msgpack:"kind"`
	Name string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name"`

	// Supertypes lists ancestor names of a module, nearest first.
	Supertypes []string `json:"supertypes,omitempty" yaml:"supertypes,omitempty" msgpack:"supertypes"`

	Members []Decl `json:"members,omitempty" yaml:"members,omitempty" msgpack:"members"`
	Value   *Decl  `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value"`
	Target  *Decl  `json:"target,omitempty" yaml:"target,omitempty" msgpack:"target"`
}

// Declaration kinds accepted in tree documents.
const (
	DeclPackage    = "package"
	DeclModule     = "module"
	DeclMethod     = "method"
	DeclField      = "field"
	DeclParameter  = "parameter"
	DeclVariable   = "variable"
	DeclReference  = "reference"
	DeclLiteral    = "literal"
	DeclAssignment = "assignment"
)
