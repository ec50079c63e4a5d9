package vm_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imartayan/bftw/compiler"
	"github.com/imartayan/bftw/io"
	"github.com/imartayan/bftw/vm"
)

var _ = Describe("VM", func() {
	var (
		machine *vm.VM
		output  *bytes.Buffer
		input   *strings.Reader
	)

	run := func(source string) error {
		prog, err := compiler.Compile(source)
		Expect(err).NotTo(HaveOccurred())
		return machine.Execute(prog)
	}

	BeforeEach(func() {
		output = &bytes.Buffer{}
		input = strings.NewReader("")
		machine = vm.NewVM(io.NewConsole(input, output))
	})

	Context("Tape", func() {
		It("should start with a single zero cell", func() {
			Expect(machine.Tape.Data).To(Equal([]byte{0}))
			Expect(machine.Tape.Cursor).To(Equal(0))
		})

		It("should fail to move left of the first cell", func() {
			Expect(run(">+<<")).To(MatchError(vm.ErrCannotMoveLeft))
			Expect(machine.Tape.Cursor).To(Equal(0))
		})

		It("should keep cell values when moving back right", func() {
			Expect(run(">+++<>>++<")).To(Succeed())
			Expect(machine.Tape.Data).To(Equal([]byte{0, 3, 2}))
			Expect(machine.Tape.Cursor).To(Equal(1))
		})
	})

	Context("Cell arithmetic", func() {
		It("should wrap 255 to 0 on increment", func() {
			machine.Tape.Set(255)
			Expect(run("+")).To(Succeed())
			Expect(machine.Tape.Get()).To(Equal(byte(0)))
		})

		It("should wrap 0 to 255 on decrement", func() {
			Expect(run("-")).To(Succeed())
			Expect(machine.Tape.Get()).To(Equal(byte(255)))
		})
	})

	Context("Loops", func() {
		It("should skip the body when the cell is zero", func() {
			Expect(run("[<]")).To(Succeed())
			Expect(machine.Ticks).To(Equal(1))
		})

		It("should abort every enclosing loop on error", func() {
			Expect(run("+[>+[>+[<<<]]]+++")).To(MatchError(vm.ErrCannotMoveLeft))
			Expect(machine.Tape.Data).To(Equal([]byte{1, 1, 1}))
		})

		It("should ignore comments", func() {
			Expect(run("six ++ ++ ++ [ loop > + < - ] done >")).To(Succeed())
			Expect(machine.Tape.Data).To(Equal([]byte{0, 6}))
		})
	})

	Context("Console", func() {
		It("should print the built-in program output", func() {
			Expect(run("++++++++[>+>++++++>++++<<<-]>[>+.>.<<-]")).To(Succeed())
			Expect(output.String()).To(Equal("1 2 3 4 5 6 7 8 "))
		})

		It("should echo input bytes", func() {
			input.Reset("ok\x00")
			Expect(run(",[.,]")).To(Succeed())
			Expect(output.String()).To(Equal("ok"))
		})

		It("should report a closed input outside the runtime errors", func() {
			err := run(",")
			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(vm.ErrCannotMoveLeft))

			var in *io.ErrInput
			Expect(errors.As(err, &in)).To(BeTrue())
		})
	})
})
