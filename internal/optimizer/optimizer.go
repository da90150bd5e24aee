// Package optimizer reduces output programs. The optimizing AOT path
// is the plain compiler followed by this package's pass pipeline:
// constant folding turns every print into a precomputed literal, and
// dead-code elimination drops the appends nothing will ever print.
//
// For a valid source program the pipeline's result contains exactly
// one PrintLiteral per Print statement and nothing else.
package optimizer

import "github.com/ribbon-lang/ribbon/internal/ir"

// Pass is a single optimization over an output program. Passes never
// mutate their input; they return a reduced copy.
type Pass interface {
	// Name returns a human-readable name for diagnostics.
	Name() string

	// Run applies the pass and returns the transformed program.
	Run(p ir.Program) ir.Program
}

// Optimizer runs a fixed sequence of passes.
type Optimizer struct {
	passes []Pass
}

// New creates an optimizer with the default pipeline: constant folding
// first, then dead-code elimination. Folding runs first because it is
// what exposes the dead trailing appends to the elimination pass.
func New() *Optimizer {
	return &Optimizer{
		passes: []Pass{
			&ConstantFoldingPass{},
			&DeadCodeEliminationPass{},
		},
	}
}

// AddPass appends a custom pass to the pipeline.
func (o *Optimizer) AddPass(pass Pass) {
	o.passes = append(o.passes, pass)
}

// Optimize runs all passes in order and returns the reduced program.
func (o *Optimizer) Optimize(p ir.Program) ir.Program {
	for _, pass := range o.passes {
		p = pass.Run(p)
	}
	return p
}
