// Package sink persists compiled output programs. A sink receives a
// fully-built program only; compilation failures never reach it, so a
// failed compile can never leave a partial artifact behind.
package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ribbon-lang/ribbon/internal/ir"
)

// Sink consumes a complete output program.
type Sink interface {
	Persist(p ir.Program) error
}

// PersistenceError reports an I/O failure while persisting a program.
// It is distinct from compilation errors: a wrapped PersistenceError
// always means the program itself was valid.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// FileSink persists programs to a file path, atomically: the encoded
// program is written to a temporary file in the target directory and
// renamed into place, so a partially-written artifact is never visible
// at Path.
type FileSink struct {
	Path string
}

// Persist writes p's textual form to the sink's path.
func (s *FileSink) Persist(p ir.Program) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".ribbon-*")
	if err != nil {
		return &PersistenceError{Path: s.Path, Err: err}
	}

	if _, err := tmp.Write(p.Encode()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.Path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.Path, Err: err}
	}
	// CreateTemp makes the file 0600; give the artifact normal
	// permissions before it becomes visible.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.Path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.Path, Err: err}
	}
	return nil
}

// BufferSink keeps the persisted form in memory, for tests and for
// callers that want the bytes without touching disk.
type BufferSink struct {
	Data     []byte
	Persists int
}

func (s *BufferSink) Persist(p ir.Program) error {
	s.Data = p.Encode()
	s.Persists++
	return nil
}
