package optimizer

import "github.com/ribbon-lang/ribbon/internal/ir"

// ConstantFoldingPass evaluates the accumulator at compile time.
//
// The pass walks the program with its own compile-time copy of the
// accumulator. Every AppendLiteral folds into that copy and emits
// nothing; every PrintCurrent becomes a PrintLiteral holding a
// snapshot of the value at that point. Snapshots are copies: later
// appends never reach an already-emitted literal.
//
// The pass on its own is semantics-preserving. Accumulator state left
// over after the last print is materialized as one trailing
// AppendLiteral, which the dead-code pass then removes. Instructions
// after a Halt are unreachable and dropped along with the Halt itself
// (end of program already halts).
type ConstantFoldingPass struct{}

// Name returns the name of this optimization pass.
func (c *ConstantFoldingPass) Name() string {
	return "ConstantFolding"
}

// Run executes constant folding on the given program.
func (c *ConstantFoldingPass) Run(p ir.Program) ir.Program {
	out := make(ir.Program, 0, len(p))
	var current string
	pending := false

walk:
	for _, ins := range p {
		switch ins := ins.(type) {
		case ir.AppendLiteral:
			current += ins.Text
			pending = true
		case ir.PrintCurrent:
			out = append(out, ir.PrintLiteral{Text: current})
			pending = false
		case ir.PrintLiteral:
			// already folded, e.g. when the pipeline runs twice
			out = append(out, ins)
		case ir.Halt:
			break walk
		default:
			out = append(out, ins)
		}
	}

	if pending {
		out = append(out, ir.AppendLiteral{Text: current})
	}
	return out
}
