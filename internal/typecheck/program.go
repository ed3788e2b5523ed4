package typecheck

import "github.com/wye-lang/wye/internal/ast"

// TypeCheckProgram is the top-level driver: it walks prog in source order,
// accumulating errors into the returned TypeContext rather than aborting
// on the first one (type errors are non-fatal per expression, spec.md
// §4.4 and §7). Declarations are registered in a pre-pass so expressions
// anywhere in the program may reference an enum/struct/interface declared
// later in the same file.
func TypeCheckProgram(prog *ast.Program) *TypeContext {
	tc := NewTypeContext()
	tc.registerDeclarations(prog)
	for _, stmt := range prog.Statements {
		tc.checkStatement(stmt)
	}
	return tc
}

// Succeeded reports whether the check recorded zero type errors.
func (tc *TypeContext) Succeeded() bool {
	return len(tc.TypeErrors) == 0
}
