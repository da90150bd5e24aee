package driver

import (
	"errors"
	"os"
	"path/filepath"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ribbon-lang/ribbon/internal/ir"
	"github.com/ribbon-lang/ribbon/internal/lexer"
	"github.com/ribbon-lang/ribbon/internal/sink"
)

var _ = Describe("CompileTo", func() {
	var (
		mockCtrl *gomock.Controller
		mockSink *MockSink
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockSink = NewMockSink(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("persists the finished program exactly once", func() {
		mockSink.EXPECT().
			Persist(ir.Program{
				ir.AppendLiteral{Text: "hello"},
				ir.PrintCurrent{},
				ir.Halt{},
			}).
			Return(nil)

		err := CompileTo([]string{"hello", "print"}, false, mockSink)

		Expect(err).ToNot(HaveOccurred())
	})

	It("persists the reduced program when optimizing", func() {
		mockSink.EXPECT().
			Persist(ir.Program{ir.PrintLiteral{Text: "abc"}}).
			Return(nil)

		err := CompileTo([]string{"abc", "print", "def"}, true, mockSink)

		Expect(err).ToNot(HaveOccurred())
	})

	It("never touches the sink when compilation fails", func() {
		// no EXPECT: any Persist call fails the test
		err := CompileTo([]string{"abc", "this-is-invalid"}, false, mockSink)

		var ise *lexer.InvalidStatementError
		Expect(errors.As(err, &ise)).To(BeTrue())
		Expect(ise.Line).To(Equal(2))
	})

	It("never touches the sink when optimized compilation fails", func() {
		err := CompileTo([]string{"trap"}, true, mockSink)

		var ise *lexer.InvalidStatementError
		Expect(errors.As(err, &ise)).To(BeTrue())
	})

	It("surfaces sink failures to the caller", func() {
		cause := &sink.PersistenceError{Path: "/dev/full", Err: errors.New("disk full")}
		mockSink.EXPECT().Persist(gomock.Any()).Return(cause)

		err := CompileTo([]string{"a", "print"}, false, mockSink)

		var pe *sink.PersistenceError
		Expect(errors.As(err, &pe)).To(BeTrue())
	})
})

var _ = Describe("RunFile", func() {
	var dir string

	writeSource := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("streams interpreter output", func() {
		src := writeSource("p.rbn", "hello\nprint\n world\nprint\n")

		var out ir.SliceSink
		Expect(RunFile(ModeInterpret, src, "", &out)).To(Succeed())

		Expect(out.Values).To(Equal([]string{"hello", "hello world"}))
	})

	It("persists a compiled artifact that exec reproduces", func() {
		src := writeSource("p.rbn", "hello\nprint\n")
		outPath := filepath.Join(dir, "p.rbx")

		Expect(RunFile(ModeCompile, src, outPath, nil)).To(Succeed())

		var out ir.SliceSink
		Expect(Exec(outPath, &out)).To(Succeed())
		Expect(out.Values).To(Equal([]string{"hello"}))
	})

	It("persists an optimized artifact with only print literals", func() {
		src := writeSource("p.rbn", "abc\nprint\ndef\n")
		outPath := filepath.Join(dir, "p.rbx")

		Expect(RunFile(ModeCompileOptimized, src, outPath, nil)).To(Succeed())

		data, err := os.ReadFile(outPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(Equal("print \"abc\"\n"))
	})

	It("refuses an AOT mode without an output path", func() {
		src := writeSource("p.rbn", "a\n")

		Expect(RunFile(ModeCompile, src, "", nil)).To(HaveOccurred())
	})

	It("leaves no artifact when the source is invalid", func() {
		src := writeSource("p.rbn", "a\nprint\ntrap\n")
		outPath := filepath.Join(dir, "p.rbx")

		err := RunFile(ModeCompile, src, outPath, nil)

		var ise *lexer.InvalidStatementError
		Expect(errors.As(err, &ise)).To(BeTrue())
		Expect(ise.Line).To(Equal(3))
		_, statErr := os.Stat(outPath)
		Expect(os.IsNotExist(statErr)).To(BeTrue())
	})
})

var _ = Describe("Session", func() {
	var (
		out     *ir.SliceSink
		session *Session
	)

	BeforeEach(func() {
		out = &ir.SliceSink{}
		session = NewSession(out)
	})

	It("carries the accumulator across evals", func() {
		Expect(session.Eval("hello")).To(Succeed())
		Expect(session.Eval("print")).To(Succeed())
		Expect(session.Eval(" world")).To(Succeed())
		Expect(session.Eval("print")).To(Succeed())

		Expect(out.Values).To(Equal([]string{"hello", "hello world"}))
	})

	It("keeps state across a malformed line", func() {
		Expect(session.Eval("abc")).To(Succeed())

		err := session.Eval("this-is-invalid")
		var ise *lexer.InvalidStatementError
		Expect(errors.As(err, &ise)).To(BeTrue())
		Expect(ise.Line).To(Equal(2))

		Expect(session.Eval("print")).To(Succeed())
		Expect(out.Values).To(Equal([]string{"abc"}))
	})

	It("ignores comments", func() {
		Expect(session.Eval("# note")).To(Succeed())
		Expect(session.Current()).To(Equal(""))
	})

	It("clears the accumulator on reset", func() {
		Expect(session.Eval("abc")).To(Succeed())
		session.Reset()
		Expect(session.Eval("print")).To(Succeed())

		Expect(out.Values).To(Equal([]string{""}))
	})
})

var _ = Describe("ParseMode", func() {
	It("accepts the four modes", func() {
		for _, name := range []string{"interpret", "compile", "compile-optimized", "jit"} {
			mode, err := ParseMode(name)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(mode)).To(Equal(name))
		}
	})

	It("rejects anything else", func() {
		_, err := ParseMode("transpile")
		Expect(err).To(HaveOccurred())
	})
})
