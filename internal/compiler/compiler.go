// Package compiler translates a classified program into an output
// program without executing it.
//
// The translation is 1:1: every Emit becomes an AppendLiteral, every
// Print a PrintCurrent, and comments are dropped. A Halt terminates
// the output. Compilation is all-or-nothing: a program containing an
// Invalid statement produces no output program at all, which is the
// observable contract separating compile-then-run from interpretation.
package compiler

import (
	"github.com/ribbon-lang/ribbon/internal/ir"
	"github.com/ribbon-lang/ribbon/internal/lexer"
)

// Compile translates p into an output program. If p contains an
// Invalid statement, Compile returns a nil program and the
// *lexer.InvalidStatementError for the first one.
func Compile(p lexer.Program) (ir.Program, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}

	out := make(ir.Program, 0, len(p)+1)
	for _, s := range p {
		switch s.Kind {
		case lexer.KindEmit:
			out = append(out, ir.AppendLiteral{Text: s.Payload})
		case lexer.KindPrint:
			out = append(out, ir.PrintCurrent{})
		case lexer.KindComment:
			// dropped; comments never reach any backend's output
		}
	}
	return append(out, ir.Halt{}), nil
}
