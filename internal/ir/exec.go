package ir

import (
	"fmt"
	"io"
)

// OutputSink receives printed values in order, one call per print. It
// is the observable output channel for the interpreter, the JIT and
// the instruction executor.
type OutputSink interface {
	Emit(value string) error
}

// SliceSink collects printed values in memory.
type SliceSink struct {
	Values []string
}

func (s *SliceSink) Emit(value string) error {
	s.Values = append(s.Values, value)
	return nil
}

// WriterSink writes each printed value as its own line.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Emit(value string) error {
	_, err := fmt.Fprintln(s.W, value)
	return err
}

// Execute runs a program against a fresh accumulator, emitting each
// printed value to out as it is produced. Reaching the end of the
// program is equivalent to a Halt.
func Execute(p Program, out OutputSink) error {
	var current string
	for _, ins := range p {
		switch ins := ins.(type) {
		case AppendLiteral:
			current += ins.Text
		case PrintCurrent:
			if err := out.Emit(current); err != nil {
				return err
			}
		case PrintLiteral:
			if err := out.Emit(ins.Text); err != nil {
				return err
			}
		case Halt:
			return nil
		default:
			return fmt.Errorf("unknown instruction %T", ins)
		}
	}
	return nil
}
