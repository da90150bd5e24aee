package optimizer

import "github.com/ribbon-lang/ribbon/internal/ir"

// DeadCodeEliminationPass removes appends whose effect is never
// printed.
//
// The accumulator is the program's only value and it is live exactly
// until the last print, so liveness needs no backward analysis: any
// AppendLiteral with no print after it is a dead store. This is what
// folds away trailing emits in the source — and the single trailing
// AppendLiteral the constant-folding pass materializes.
type DeadCodeEliminationPass struct{}

// Name returns the name of this optimization pass.
func (d *DeadCodeEliminationPass) Name() string {
	return "DeadCodeElimination"
}

// Run executes dead-store elimination on the given program.
func (d *DeadCodeEliminationPass) Run(p ir.Program) ir.Program {
	lastPrint := -1
	for i, ins := range p {
		switch ins.(type) {
		case ir.PrintCurrent, ir.PrintLiteral:
			lastPrint = i
		}
	}

	out := make(ir.Program, 0, len(p))
	for i, ins := range p {
		if i > lastPrint {
			if _, dead := ins.(ir.AppendLiteral); dead {
				continue
			}
		}
		out = append(out, ins)
	}
	return out
}
