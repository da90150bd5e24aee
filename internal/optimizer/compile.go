package optimizer

import (
	"github.com/ribbon-lang/ribbon/internal/compiler"
	"github.com/ribbon-lang/ribbon/internal/ir"
	"github.com/ribbon-lang/ribbon/internal/lexer"
)

// CompileOptimized is the optimizing AOT entry point: the plain
// translation followed by the default pass pipeline. Like
// compiler.Compile it is all-or-nothing — an Invalid statement fails
// the compilation with no output program produced.
//
// For a valid program the result is one PrintLiteral per source Print
// statement, in order, and nothing else.
func CompileOptimized(p lexer.Program) (ir.Program, error) {
	out, err := compiler.Compile(p)
	if err != nil {
		return nil, err
	}
	return New().Optimize(out), nil
}
