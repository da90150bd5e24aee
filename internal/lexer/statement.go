package lexer

// Kind identifies what a source line means.
//
// An int-based enum (via iota) keeps comparisons cheap and lets the
// backends dispatch with a plain switch.
type Kind int

const (
	// KindComment is a line starting with '#'. Comments stay in the
	// Program so line numbers keep matching the source, but no backend
	// ever emits anything for them.
	KindComment Kind = iota

	// KindEmit appends the line's text to the accumulator. Any line
	// whose first character is not '#', 'p' or 't' is an Emit —
	// including empty lines and lines starting with whitespace. The
	// grammar is deliberately permissive; there are no reserved words.
	KindEmit

	// KindPrint is a line starting with 'p'. It prints the current
	// accumulator value.
	KindPrint

	// KindInvalid is a line starting with 't', the reserved marker for
	// a malformed statement. The classifier records it rather than
	// failing so the interpreter can still emit output for the lines
	// before it.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "Comment"
	case KindEmit:
		return "Emit"
	case KindPrint:
		return "Print"
	case KindInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Statement is one classified source line.
type Statement struct {
	Kind Kind

	// Payload is the text an Emit statement appends. Empty for every
	// other kind.
	Payload string

	// Line is the 1-based source line, kept for diagnostics.
	Line int
}

// Program is an ordered sequence of statements, one per source line.
// Order is load-bearing: appends and prints are sequential mutations of
// a single string. A Program is immutable once produced by Classify.
type Program []Statement

// Check returns the error for the first Invalid statement, or nil if
// the program is valid. The compiling backends call this up front so a
// malformed program produces no output at all.
func (p Program) Check() error {
	for _, s := range p {
		if s.Kind == KindInvalid {
			return &InvalidStatementError{Line: s.Line}
		}
	}
	return nil
}

// Prints counts the Print statements in the program.
func (p Program) Prints() int {
	n := 0
	for _, s := range p {
		if s.Kind == KindPrint {
			n++
		}
	}
	return n
}
