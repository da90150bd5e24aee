// Command ribbon runs programs under one of four execution strategies
// (interpret, compile, compile-optimized, jit), executes previously
// compiled artifacts, drives manifest builds, and hosts an interactive
// REPL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/tebeka/atexit"

	"github.com/ribbon-lang/ribbon/internal/driver"
	"github.com/ribbon-lang/ribbon/internal/ir"
)

const (
	appName     = "ribbon"
	historyFile = ".ribbon_history"
	prompt      = "rbn> "
)

const usageText = `Usage:
  ribbon interpret <src>          interpret a source file directly
  ribbon jit <src>                compile in memory and run immediately
  ribbon compile [-O] <src> -o <out>
                                  compile to an output program file
  ribbon compile-optimized <src> -o <out>
                                  same as compile -O
  ribbon exec <compiled>          run a compiled output program
  ribbon build [manifest]         run every target in ribbon.yml
  ribbon repl                     interactive session

Exit status is 0 on success and 1 on any error; malformed statements
are reported with their source line number.
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
}

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		atexit.Exit(1)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "interpret", "jit":
		err = runSource(driver.Mode(cmd), os.Args[2:])
	case "compile":
		err = runCompile(os.Args[2:], false)
	case "compile-optimized":
		err = runCompile(os.Args[2:], true)
	case "exec":
		err = runExec(os.Args[2:])
	case "build":
		err = runBuild(os.Args[2:])
	case "repl":
		err = runREPL()
	case "help", "-h", "--help":
		usage()
		atexit.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		atexit.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// newFlagSet builds a flag set whose errors surface through main's
// single error path, so every failure exits with status 1.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runSource(mode driver.Mode, args []string) error {
	fs := newFlagSet(string(mode))
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%s takes exactly one source file", mode)
	}
	return driver.RunFile(mode, fs.Arg(0), "", ir.WriterSink{W: os.Stdout})
}

func runCompile(args []string, optimize bool) error {
	fs := newFlagSet("compile")
	optFlag := fs.Bool("O", false, "enable constant folding and dead-code elimination")
	out := fs.String("o", "", "output path for the compiled program")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// flag stops parsing at the first positional, so take the source
	// file and re-parse the remainder; both "compile -o out src" and
	// "compile src -o out" are accepted.
	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New("compile takes exactly one source file")
	}
	src := rest[0]
	if err := fs.Parse(rest[1:]); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return errors.New("compile takes exactly one source file")
	}
	if *out == "" {
		return errors.New("compile requires -o <out>")
	}

	mode := driver.ModeCompile
	if optimize || *optFlag {
		mode = driver.ModeCompileOptimized
	}
	return driver.RunFile(mode, src, *out, nil)
}

func runExec(args []string) error {
	fs := newFlagSet("exec")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("exec takes exactly one compiled program")
	}
	return driver.Exec(fs.Arg(0), ir.WriterSink{W: os.Stdout})
}

func runBuild(args []string) error {
	path := "ribbon.yml"
	if len(args) > 0 {
		path = args[0]
	}
	m, err := driver.LoadManifest(path)
	if err != nil {
		return err
	}
	return m.Run(ir.WriterSink{W: os.Stdout})
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func runREPL() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := historyPath()
	if history != "" {
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(history); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Println("ribbon REPL — :reset clears the accumulator, :quit exits.")
	session := driver.NewSession(ir.WriterSink{W: os.Stdout})

	for {
		input, err := line.Prompt(prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return nil
		default:
			return err
		}

		switch input {
		case ":quit":
			return nil
		case ":reset":
			session.Reset()
			continue
		}

		line.AppendHistory(input)
		if err := session.Eval(input); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
	}
}
