// Copyright 2026, imartayan

package main

import (
	"bufio"
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/imartayan/bftw/compiler"
	"github.com/imartayan/bftw/io"
	"github.com/imartayan/bftw/vm"
)

// defaultSource is run when no source file is given.
const defaultSource = "++++++++[>+>++++++>++++<<<-]>[>+.>.<<-]"

// readSource returns the contents of a source file, or the default
// source if path is empty.
func readSource(path string) (source string, err error) {
	if len(path) == 0 {
		source = defaultSource
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	source = string(data)
	return
}

// compileSource compiles source text.
func compileSource(source string, verbose bool) (prog *compiler.Program, err error) {
	comp := &compiler.Compiler{Verbose: verbose}
	return comp.Parse(strings.NewReader(source))
}

// errorKind names the taxonomy of an execution error.
func errorKind(err error) string {
	var in *io.ErrInput
	var out *io.ErrOutput

	switch {
	case errors.As(err, &in), errors.As(err, &out):
		return "console error"
	case errors.Is(err, compiler.ErrProgramInvalid):
		return "program error"
	default:
		return "runtime error"
	}
}

// loadProgram loads a program saved with -s.
func loadProgram(path string) (prog *compiler.Program, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	prog, err = compiler.UnmarshalProgram(data)
	return
}

func main() {
	var input string
	var output string
	var save string
	var load string
	var verbose bool

	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.StringVar(&save, "s", "", "Save compiled program to file, do not execute")
	flag.StringVar(&load, "p", "", "Compiled program to execute instead of source")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	source := flag.Arg(0)

	var prog *compiler.Program
	var err error
	if len(load) != 0 {
		if len(source) != 0 {
			atexit.Fatalf("%v: -p and a source file are exclusive", os.Args[0])
		}
		prog, err = loadProgram(load)
		if err != nil {
			atexit.Fatalf("%v: %v", load, err)
		}
	} else {
		text, err := readSource(source)
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
		prog, err = compileSource(text, verbose)
		if err != nil {
			if len(source) == 0 {
				source = "default"
			}
			atexit.Fatalf("%v: compile error: %v", source, err)
		}
	}

	if len(save) != 0 {
		data, err := compiler.MarshalProgram(prog)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		err = os.WriteFile(save, data, 0o644)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		atexit.Exit(0)
	}

	con := &io.Console{}

	if input == "-" {
		con.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
		atexit.Register(func() { inf.Close() })
		con.Input = inf
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
	}
	buffered := bufio.NewWriter(ouf)
	atexit.Register(func() {
		buffered.Flush()
		if ouf != os.Stdout {
			ouf.Close()
		}
	})
	con.Output = buffered

	machine := vm.NewVM(con)
	machine.Verbose = verbose

	err = machine.Execute(prog)
	if err != nil {
		if verbose {
			log.Printf("vm: stopped after %d instructions", machine.Ticks)
		}
		atexit.Fatalf("%v: %v", errorKind(err), err)
	}

	atexit.Exit(0)
}
