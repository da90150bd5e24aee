// Package ir defines the output program representation shared by the
// compiling backends: a flat sequence of instructions over a single
// mutable string, plus an executor and a textual encoding for
// persisted programs.
//
// The instruction set is deliberately tiny. There is no control flow
// and only one implicit register (the accumulator), so a program is a
// straight line of at most four instruction kinds.
package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is a single output-program instruction. The concrete
// types are AppendLiteral, PrintCurrent, PrintLiteral and Halt.
type Instruction interface {
	// String returns the instruction's textual form, one line, as it
	// appears in a persisted program.
	String() string
}

// AppendLiteral appends a literal to the accumulator.
// Format: append "text"
type AppendLiteral struct {
	Text string
}

func (a AppendLiteral) String() string {
	return "append " + strconv.Quote(a.Text)
}

// PrintCurrent prints the accumulator's current value.
// Format: print
type PrintCurrent struct{}

func (PrintCurrent) String() string { return "print" }

// PrintLiteral prints a precomputed literal. Only the optimizing
// compiler emits these; the literal is a snapshot of the folded
// accumulator at the corresponding print site.
// Format: print "text"
type PrintLiteral struct {
	Text string
}

func (p PrintLiteral) String() string {
	return "print " + strconv.Quote(p.Text)
}

// Halt stops execution. The executor also treats running off the end
// of a program as a halt, so optimized programs omit it.
// Format: halt
type Halt struct{}

func (Halt) String() string { return "halt" }

// Program is an ordered sequence of instructions.
type Program []Instruction

// String returns the persisted textual form: one instruction per line,
// each line terminated by a newline. The encoding is deterministic, so
// compiling the same source twice yields byte-identical output.
func (p Program) String() string {
	var b strings.Builder
	for _, ins := range p {
		b.WriteString(ins.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Encode returns the persisted form as bytes.
func (p Program) Encode() []byte {
	return []byte(p.String())
}

// Parse decodes a persisted textual program back into instructions.
// It is the exact inverse of Program.String.
func Parse(text string) (Program, error) {
	var program Program
	for i, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		ins, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		program = append(program, ins)
	}
	return program, nil
}

func parseLine(line string) (Instruction, error) {
	op, rest, hasArg := strings.Cut(line, " ")
	switch op {
	case "append":
		if !hasArg {
			return nil, fmt.Errorf("append needs a literal argument")
		}
		text, err := strconv.Unquote(rest)
		if err != nil {
			return nil, fmt.Errorf("malformed append literal %s", rest)
		}
		return AppendLiteral{Text: text}, nil
	case "print":
		if !hasArg {
			return PrintCurrent{}, nil
		}
		text, err := strconv.Unquote(rest)
		if err != nil {
			return nil, fmt.Errorf("malformed print literal %s", rest)
		}
		return PrintLiteral{Text: text}, nil
	case "halt":
		if hasArg {
			return nil, fmt.Errorf("halt takes no argument")
		}
		return Halt{}, nil
	default:
		return nil, fmt.Errorf("unknown instruction %q", op)
	}
}
