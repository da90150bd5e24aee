package driver

import (
	"github.com/ribbon-lang/ribbon/internal/ir"
	"github.com/ribbon-lang/ribbon/internal/lexer"
)

// Session is a persistent interpreter session for the REPL: the
// accumulator survives across Eval calls, so appends entered on
// earlier lines feed prints entered later.
type Session struct {
	out     ir.OutputSink
	current string
	line    int
}

// NewSession creates a session emitting printed values to out.
func NewSession(out ir.OutputSink) *Session {
	return &Session{out: out}
}

// Eval classifies and interprets a single entered line. A malformed
// line returns the error but leaves the session — accumulator
// included — intact, so the REPL keeps going.
func (s *Session) Eval(line string) error {
	s.line++
	program := lexer.Classify([]string{line})
	stmt := program[0]
	stmt.Line = s.line

	switch stmt.Kind {
	case lexer.KindEmit:
		s.current += stmt.Payload
	case lexer.KindPrint:
		return s.out.Emit(s.current)
	case lexer.KindInvalid:
		return &lexer.InvalidStatementError{Line: stmt.Line}
	case lexer.KindComment:
		// no-op
	}
	return nil
}

// Current returns the accumulator's present value.
func (s *Session) Current() string {
	return s.current
}

// Reset clears the accumulator but keeps counting lines.
func (s *Session) Reset() {
	s.current = ""
}
