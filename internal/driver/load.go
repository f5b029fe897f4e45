// Package driver glues the front-end boundary to the linker: it loads
// serialized tree documents, rebuilds them as package nodes, links them
// against the running environment, and reports what the linker left
// unresolved.
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"weld/internal/ast"
	"weld/internal/diag"
	"weld/internal/source"
)

// Loader decodes tree documents and rebuilds them as package nodes. One
// loader serves a whole link session: the file table persists across
// loads so a re-read of the same path yields the same FileID, which is
// what lets a relink replace the file's previous declarations.
type Loader struct {
	fs       afs.Service
	files    *source.Files
	reporter diag.Reporter
}

func NewLoader(fs afs.Service, files *source.Files, reporter diag.Reporter) *Loader {
	if fs == nil {
		fs = afs.New()
	}
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Loader{fs: fs, files: files, reporter: reporter}
}

// LoadFile reads, decodes, and builds one tree document. Decode errors
// are reported and returned; build problems inside a decodable document
// are reported but do not fail the load.
func (l *Loader) LoadFile(ctx context.Context, tree *ast.Tree, location string) (ast.NodeID, error) {
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		diag.ReportError(l.reporter, diag.LoadReadFailed, location, err.Error()).Emit()
		return ast.NoNodeID, fmt.Errorf("read %s: %w", location, err)
	}
	doc, err := Decode(location, data)
	if err != nil {
		diag.ReportError(l.reporter, diag.LoadBadDocument, location, err.Error()).Emit()
		return ast.NoNodeID, err
	}
	return l.Build(tree, doc, location)
}

// Decode unmarshals document bytes, picking the codec from the file
// extension: .yaml/.yml documents are YAML, everything else JSON.
func Decode(location string, data []byte) (*Document, error) {
	var doc Document
	switch path.Ext(location) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", location, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", location, err)
		}
	}
	return &doc, nil
}

// Build turns a decoded document into a top-level package node inside
// tree. A dotted package name becomes a chain of namespace packages with
// only the innermost one tagged by the source file; the merger relies on
// the tag to tell recompiled declarations from contributions of other
// files. Returns the outermost package of the chain.
func (l *Loader) Build(tree *ast.Tree, doc *Document, location string) (ast.NodeID, error) {
	if strings.TrimSpace(doc.Package) == "" {
		diag.ReportError(l.reporter, diag.LoadEmptyPackage, location, "document declares no package").Emit()
		return ast.NoNodeID, fmt.Errorf("%s: document declares no package", location)
	}

	b := docBuilder{tree: tree, reporter: l.reporter, location: location}

	imports := make([]ast.NodeID, 0, len(doc.Imports))
	for _, imp := range doc.Imports {
		imports = append(imports, tree.NewImport(b.name(imp.Target), imp.All))
	}
	members := make([]ast.NodeID, 0, len(doc.Declarations))
	for i := range doc.Declarations {
		if id := b.decl(&doc.Declarations[i]); id.IsValid() {
			members = append(members, id)
		}
	}

	segments := strings.Split(doc.Package, ".")
	inner := tree.NewPackage(b.name(segments[len(segments)-1]),
		l.files.Add(location), doc.Test, imports, members)

	top := inner
	for i := len(segments) - 2; i >= 0; i-- {
		top = tree.NewPackage(b.name(segments[i]), source.NoFileID, false,
			nil, []ast.NodeID{top})
	}
	return top, nil
}

// docBuilder rebuilds Decl records as tree nodes, interning every name
// in NFC so equal-looking identifiers from different front-ends compare
// equal.
type docBuilder struct {
	tree     *ast.Tree
	reporter diag.Reporter
	location string
}

func (b *docBuilder) name(s string) source.StringID {
	if s == "" {
		return source.NoStringID
	}
	return b.tree.Strings.Intern(norm.NFC.String(s))
}

func (b *docBuilder) decl(d *Decl) ast.NodeID {
	switch d.Kind {
	case DeclPackage:
		return b.tree.NewPackage(b.name(d.Name), source.NoFileID, false,
			nil, b.members(d))
	case DeclModule:
		sup := make([]ast.NodeID, 0, len(d.Supertypes))
		for _, s := range d.Supertypes {
			sup = append(sup, b.tree.NewSupertype(b.tree.NewReference(b.name(s))))
		}
		return b.tree.NewModule(b.name(d.Name), sup, b.members(d))
	case DeclMethod:
		return b.tree.NewMethod(b.name(d.Name), b.members(d))
	case DeclField:
		return b.tree.NewField(b.name(d.Name))
	case DeclParameter:
		return b.tree.NewParameter(b.name(d.Name))
	case DeclVariable:
		return b.tree.NewVariable(b.name(d.Name), b.child(d.Value))
	case DeclReference:
		return b.tree.NewReference(b.name(d.Name))
	case DeclLiteral:
		return b.tree.NewLiteral()
	case DeclAssignment:
		return b.tree.NewAssignment(b.child(d.Target), b.child(d.Value))
	default:
		diag.ReportError(b.reporter, diag.LoadBadMemberKind, b.location,
			"unknown declaration kind").WithValues(d.Kind).Emit()
		return ast.NoNodeID
	}
}

func (b *docBuilder) members(d *Decl) []ast.NodeID {
	out := make([]ast.NodeID, 0, len(d.Members))
	for i := range d.Members {
		if id := b.decl(&d.Members[i]); id.IsValid() {
			out = append(out, id)
		}
	}
	return out
}

func (b *docBuilder) child(d *Decl) ast.NodeID {
	if d == nil {
		return ast.NoNodeID
	}
	return b.decl(d)
}
