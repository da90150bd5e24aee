// Package driver ties the execution strategies together behind one
// surface: mode dispatch for the CLI, build-manifest execution, and a
// persistent REPL session.
package driver

import (
	"fmt"
	"strings"

	"github.com/ribbon-lang/ribbon/internal/compiler"
	"github.com/ribbon-lang/ribbon/internal/interp"
	"github.com/ribbon-lang/ribbon/internal/ir"
	"github.com/ribbon-lang/ribbon/internal/jit"
	"github.com/ribbon-lang/ribbon/internal/lexer"
	"github.com/ribbon-lang/ribbon/internal/optimizer"
	"github.com/ribbon-lang/ribbon/internal/sink"
	"github.com/ribbon-lang/ribbon/internal/source"
)

// Mode selects an execution strategy.
type Mode string

const (
	ModeInterpret        Mode = "interpret"
	ModeCompile          Mode = "compile"
	ModeCompileOptimized Mode = "compile-optimized"
	ModeJIT              Mode = "jit"
)

// ParseMode validates a mode name from the CLI or a manifest.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeInterpret, ModeCompile, ModeCompileOptimized, ModeJIT:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want interpret, compile, compile-optimized or jit)", s)
	}
}

// IsAOT reports whether the mode persists a compiled artifact.
func (m Mode) IsAOT() bool {
	return m == ModeCompile || m == ModeCompileOptimized
}

// Interpret classifies lines and interprets them directly, streaming
// printed values to out as they are produced.
func Interpret(lines []string, out ir.OutputSink) error {
	return interp.New(out).Run(lexer.Classify(lines))
}

// JIT classifies lines, compiles them in memory and runs the result.
func JIT(lines []string, out ir.OutputSink) error {
	return jit.Run(lexer.Classify(lines), out)
}

// Compile classifies lines and compiles them without optimization.
func Compile(lines []string) (ir.Program, error) {
	return compiler.Compile(lexer.Classify(lines))
}

// CompileOptimized classifies lines and runs the optimizing compiler.
func CompileOptimized(lines []string) (ir.Program, error) {
	return optimizer.CompileOptimized(lexer.Classify(lines))
}

// CompileTo compiles lines and hands the finished program to s. The
// sink is only reached on a successful compile; a malformed program
// fails here with no Persist call, so no partial artifact can exist.
func CompileTo(lines []string, optimize bool, s sink.Sink) error {
	var (
		program ir.Program
		err     error
	)
	if optimize {
		program, err = CompileOptimized(lines)
	} else {
		program, err = Compile(lines)
	}
	if err != nil {
		return err
	}
	return s.Persist(program)
}

// RunFile loads a source file and executes it under the given mode.
// AOT modes persist to outPath; the other modes stream to out.
func RunFile(mode Mode, path, outPath string, out ir.OutputSink) error {
	f, err := source.Load(path)
	if err != nil {
		return err
	}

	switch mode {
	case ModeInterpret:
		return Interpret(f.Lines, out)
	case ModeJIT:
		return JIT(f.Lines, out)
	case ModeCompile, ModeCompileOptimized:
		if outPath == "" {
			return fmt.Errorf("mode %s requires an output path", mode)
		}
		return CompileTo(f.Lines, mode == ModeCompileOptimized, &sink.FileSink{Path: outPath})
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// Exec loads a persisted output program and runs it.
func Exec(path string, out ir.OutputSink) error {
	f, err := source.Load(path)
	if err != nil {
		return err
	}
	program, err := ir.Parse(strings.Join(f.Lines, "\n"))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return ir.Execute(program, out)
}
