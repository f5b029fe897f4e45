package driver

import (
	"weld/internal/ast"
	"weld/internal/diag"
	"weld/internal/linker"
)

// Validate checks a linked environment for names the linker left
// unresolved. The linker itself treats absence as a normal outcome;
// turning absence into diagnostics is this stage's job. Each finding is
// reported through the reporter and returned as a problem record.
func Validate(env *linker.Environment, globals []string, reporter diag.Reporter) []linker.LinkError {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	var problems []linker.LinkError

	report := func(code diag.Code, subject string, values ...string) {
		p := linker.NewLinkError(code)
		p.Values = append(p.Values, values...)
		problems = append(problems, p)
		diag.NewReportBuilder(reporter, p.Level, code, subject, code.Title()).
			WithValues(values...).Emit()
	}

	for _, name := range globals {
		if _, ok := env.Resolve(name); !ok {
			report(diag.LinkUnresolvedGlobal, name, name)
		}
	}

	t := env.Tree
	t.Walk(env.Root, ast.NoNodeID, func(id, parent ast.NodeID) {
		n := t.Get(id)
		switch n.Kind {
		case ast.KindImport:
			name := t.Name(id)
			if _, ok := env.ResolveFrom(id, name); !ok {
				report(diag.LinkUnresolvedImport, env.FullName(parent), name)
			}
		case ast.KindReference:
			name := t.Name(id)
			if name == "" {
				return
			}
			if _, ok := env.ResolveFrom(id, name); ok {
				return
			}
			if t.Get(parent).Kind == ast.KindParameterizedType {
				report(diag.LinkUnresolvedSupertype, env.FullName(t.Get(parent).Parent), name)
			} else {
				report(diag.ValUnresolvedReference, env.FullName(parent), name)
			}
		}
	})
	return problems
}
