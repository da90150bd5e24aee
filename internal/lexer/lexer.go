// Package lexer classifies source lines into statements.
//
// The grammar is line-oriented and decided entirely by a line's first
// character: '#' is a comment, 'p' prints the accumulator, 't' marks a
// malformed statement, and anything else appends the whole line to the
// accumulator. Splitting source text into lines is the caller's job
// (see internal/source); the classifier only sees already-split lines.
package lexer

// Classify turns source lines into a Program. It is total: malformed
// lines become Invalid statements instead of aborting classification,
// so the interpreter can still run the statements that precede them.
// Callers that need all-or-nothing semantics use Program.Check.
func Classify(lines []string) Program {
	program := make(Program, len(lines))
	for i, line := range lines {
		program[i] = classifyLine(line, i+1)
	}
	return program
}

// classifyLine maps one source line to a Statement. Only Emit
// statements carry the line text; the other kinds are fully described
// by their first character.
func classifyLine(line string, n int) Statement {
	if len(line) == 0 {
		return Statement{Kind: KindEmit, Line: n}
	}
	switch line[0] {
	case '#':
		return Statement{Kind: KindComment, Line: n}
	case 'p':
		return Statement{Kind: KindPrint, Line: n}
	case 't':
		return Statement{Kind: KindInvalid, Line: n}
	default:
		return Statement{Kind: KindEmit, Payload: line, Line: n}
	}
}
