package driver

import (
	"context"

	"github.com/viant/afs"

	"weld/internal/ast"
	"weld/internal/diag"
	"weld/internal/hierarchy"
	"weld/internal/ident"
	"weld/internal/linker"
	"weld/internal/source"
)

// Options configures a link session.
type Options struct {
	// Globals lists, in order, the dotted names of library packages made
	// visible unqualified everywhere.
	Globals []string

	// Jobs bounds parallel document loading; 0 uses GOMAXPROCS.
	Jobs int

	// Cache, when non-nil, memoizes decoded documents across runs.
	Cache *DiskCache

	// Generator overrides identity generation; nil gives each link a
	// fresh counter.
	Generator ident.Generator

	// Reporter receives load and validation diagnostics; nil discards
	// them.
	Reporter diag.Reporter

	// Hierarchy overrides the default linearizer.
	Hierarchy linker.Hierarchy

	// FS overrides the storage service, mainly for tests.
	FS afs.Service
}

// Session drives repeated linking over one program. The interner and
// the file table persist across Link calls, which keeps string and file
// IDs stable between an environment and its relinks.
type Session struct {
	opts    Options
	strings *source.Interner
	files   *source.Files
	loader  *Loader
	env     *linker.Environment
}

func NewSession(opts Options) *Session {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	if opts.Hierarchy == nil {
		opts.Hierarchy = hierarchy.Linearizer{}
	}
	files := source.NewFiles()
	return &Session{
		opts:    opts,
		strings: source.NewInterner(),
		files:   files,
		loader:  NewLoader(opts.FS, files, opts.Reporter),
	}
}

// Environment returns the result of the latest Link call, or nil before
// the first one.
func (s *Session) Environment() *linker.Environment { return s.env }

// Link loads the given tree documents and links them against the
// session's current environment. Paths already linked before are
// replaced at file granularity; everything else is carried over. The
// session then adopts the new environment.
func (s *Session) Link(ctx context.Context, paths []string) (*linker.Environment, error) {
	tree := ast.NewTree(s.strings, 0)
	packages, err := s.loader.LoadAll(ctx, tree, paths, s.opts.Cache, s.opts.Jobs)
	if err != nil {
		return nil, err
	}
	s.env = linker.Link(tree, packages, s.env, linker.Options{
		GlobalPackages: s.opts.Globals,
		Hierarchy:      s.opts.Hierarchy,
		Generator:      s.opts.Generator,
	})
	return s.env, nil
}

// Validate runs post-link validation over the current environment and
// reports findings through the session reporter. Returns the problem
// records, which is nil when the environment is fully resolved.
func (s *Session) Validate() []linker.LinkError {
	if s.env == nil {
		return nil
	}
	return Validate(s.env, s.opts.Globals, s.opts.Reporter)
}
