// Package jit compiles a program in memory and immediately executes
// the result. Nothing is persisted.
//
// Because the compile step runs to completion before the first
// instruction executes, a malformed program produces zero output —
// unlike interpretation, partial output is impossible here.
package jit

import (
	"github.com/ribbon-lang/ribbon/internal/compiler"
	"github.com/ribbon-lang/ribbon/internal/ir"
	"github.com/ribbon-lang/ribbon/internal/lexer"
)

// Run compiles p with the non-optimizing compiler and executes the
// in-memory output program against out. On a valid program the output
// sequence is identical to direct interpretation; on an invalid one
// the error matches the compiler's and out receives nothing.
func Run(p lexer.Program, out ir.OutputSink) error {
	compiled, err := compiler.Compile(p)
	if err != nil {
		return err
	}
	return ir.Execute(compiled, out)
}
