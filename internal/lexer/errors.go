package lexer

import "fmt"

// InvalidStatementError reports a statement whose line starts with the
// reserved invalid marker. It carries the 1-based source line so every
// backend can point at the offending input.
type InvalidStatementError struct {
	Line int
}

func (e *InvalidStatementError) Error() string {
	return fmt.Sprintf("invalid statement at line %d", e.Line)
}
