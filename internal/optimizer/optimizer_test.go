package optimizer

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ribbon-lang/ribbon/internal/interp"
	"github.com/ribbon-lang/ribbon/internal/ir"
	"github.com/ribbon-lang/ribbon/internal/lexer"
)

var _ = Describe("ConstantFoldingPass", func() {
	var pass *ConstantFoldingPass

	BeforeEach(func() {
		pass = &ConstantFoldingPass{}
	})

	It("folds appends into print literals", func() {
		out := pass.Run(ir.Program{
			ir.AppendLiteral{Text: "hello"},
			ir.PrintCurrent{},
			ir.AppendLiteral{Text: " world"},
			ir.PrintCurrent{},
			ir.Halt{},
		})

		Expect(out).To(Equal(ir.Program{
			ir.PrintLiteral{Text: "hello"},
			ir.PrintLiteral{Text: "hello world"},
		}))
	})

	It("snapshots the accumulator per print", func() {
		out := pass.Run(ir.Program{
			ir.AppendLiteral{Text: "a"},
			ir.PrintCurrent{},
			ir.AppendLiteral{Text: "b"},
			ir.Halt{},
		})

		// later appends must not reach the earlier snapshot
		Expect(out[0]).To(Equal(ir.PrintLiteral{Text: "a"}))
	})

	It("materializes leftover state as a trailing append", func() {
		out := pass.Run(ir.Program{
			ir.AppendLiteral{Text: "a"},
			ir.PrintCurrent{},
			ir.AppendLiteral{Text: "b"},
			ir.Halt{},
		})

		Expect(out).To(Equal(ir.Program{
			ir.PrintLiteral{Text: "a"},
			ir.AppendLiteral{Text: "ab"},
		}))
	})

	It("leaves already-folded programs unchanged", func() {
		folded := ir.Program{
			ir.PrintLiteral{Text: "x"},
			ir.PrintLiteral{Text: "xy"},
		}

		Expect(pass.Run(folded)).To(Equal(folded))
	})
})

var _ = Describe("DeadCodeEliminationPass", func() {
	var pass *DeadCodeEliminationPass

	BeforeEach(func() {
		pass = &DeadCodeEliminationPass{}
	})

	It("removes appends after the last print", func() {
		out := pass.Run(ir.Program{
			ir.AppendLiteral{Text: "a"},
			ir.PrintCurrent{},
			ir.AppendLiteral{Text: "b"},
			ir.Halt{},
		})

		Expect(out).To(Equal(ir.Program{
			ir.AppendLiteral{Text: "a"},
			ir.PrintCurrent{},
			ir.Halt{},
		}))
	})

	It("removes every append when there is no print", func() {
		out := pass.Run(ir.Program{
			ir.AppendLiteral{Text: "a"},
			ir.AppendLiteral{Text: "b"},
			ir.Halt{},
		})

		Expect(out).To(Equal(ir.Program{ir.Halt{}}))
	})

	It("keeps appends that feed a later print", func() {
		program := ir.Program{
			ir.AppendLiteral{Text: "a"},
			ir.AppendLiteral{Text: "b"},
			ir.PrintCurrent{},
		}

		Expect(pass.Run(program)).To(Equal(program))
	})
})

var _ = Describe("CompileOptimized", func() {
	It("folds the accumulator into print literals", func() {
		program := lexer.Classify([]string{"hello", "print", " world", "print"})

		out, err := CompileOptimized(program)

		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal(ir.Program{
			ir.PrintLiteral{Text: "hello"},
			ir.PrintLiteral{Text: "hello world"},
		}))
	})

	It("eliminates trailing emits after the last print", func() {
		program := lexer.Classify([]string{"abc", "print", "def"})

		out, err := CompileOptimized(program)

		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal(ir.Program{ir.PrintLiteral{Text: "abc"}}))
	})

	It("emits exactly one instruction per print statement", func() {
		cases := [][]string{
			{},
			{"a"},
			{"print"},
			{"a", "print", "b", "print", "c"},
			{"# x", "", "print", "print", "def"},
		}

		for _, lines := range cases {
			program := lexer.Classify(lines)
			out, err := CompileOptimized(program)

			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(HaveLen(program.Prints()))
			for _, ins := range out {
				Expect(ins).To(BeAssignableToTypeOf(ir.PrintLiteral{}))
			}
		}
	})

	It("fails with no output program on an invalid statement", func() {
		program := lexer.Classify([]string{"abc", "this-is-invalid"})

		out, err := CompileOptimized(program)

		Expect(out).To(BeNil())
		var ise *lexer.InvalidStatementError
		Expect(err).To(BeAssignableToTypeOf(ise))
		Expect(err.(*lexer.InvalidStatementError).Line).To(Equal(2))
	})

	It("matches interpreter output when executed", func() {
		lines := []string{"# greeting", "hello", "print", " world", "print", "", "print", "dead tail"}
		program := lexer.Classify(lines)

		var direct ir.SliceSink
		Expect(interp.New(&direct).Run(program)).To(Succeed())

		out, err := CompileOptimized(program)
		Expect(err).ToNot(HaveOccurred())
		var executed ir.SliceSink
		Expect(ir.Execute(out, &executed)).To(Succeed())

		Expect(executed.Values).To(Equal(direct.Values))
	})
})
