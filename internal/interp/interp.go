// Package interp executes a classified program directly, statement by
// statement, against a live accumulator.
//
// Interpretation is the only strategy with partial-progress semantics:
// every print before a malformed statement is already observable by
// the time the run fails. The compiling strategies are all-or-nothing.
package interp

import (
	"github.com/ribbon-lang/ribbon/internal/ir"
	"github.com/ribbon-lang/ribbon/internal/lexer"
)

// Interpreter runs programs against an output sink.
type Interpreter struct {
	out ir.OutputSink
}

// New creates an interpreter that emits printed values to out.
func New(out ir.OutputSink) *Interpreter {
	return &Interpreter{out: out}
}

// Run walks the program in order. Emit appends to the accumulator,
// Print emits its current value before the walk continues, Comment is
// a no-op. The first Invalid statement stops the run with an
// *lexer.InvalidStatementError; output already emitted stays emitted.
func (i *Interpreter) Run(p lexer.Program) error {
	var current string
	for _, s := range p {
		switch s.Kind {
		case lexer.KindEmit:
			current += s.Payload
		case lexer.KindPrint:
			if err := i.out.Emit(current); err != nil {
				return err
			}
		case lexer.KindComment:
			// retained only for line-number fidelity
		case lexer.KindInvalid:
			return &lexer.InvalidStatementError{Line: s.Line}
		}
	}
	return nil
}
