// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// Process exit codes.
const (
	EXIT_OK        = 0 // Program halted.
	EXIT_USAGE     = 1 // Wrong arguments.
	EXIT_NOT_FOUND = 2 // Program file could not be opened.
	EXIT_FAULT     = 1 // Program failed to load, or faulted while running.
)

// run executes the command line in args, and returns the process exit code.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	var verbose bool
	var dump bool

	name := filepath.Base(args[0])

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "v", false, "Verbose mode, traces every instruction")
	flags.BoolVar(&dump, "d", false, "Dump registers when the program stops")

	err := flags.Parse(args[1:])
	if err != nil {
		return EXIT_USAGE
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(stderr, f("Please format the command: \n %v <filename>", name))
		return EXIT_USAGE
	}

	filename := flags.Arg(0)

	inf, err := os.Open(filename)
	if err != nil {
		fmt.Fprintln(stdout, f("%v not found", filename))
		return EXIT_NOT_FOUND
	}
	defer inf.Close()

	ld := &cpu.Loader{Verbose: verbose}
	prog, err := ld.Parse(inf)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", filename, err)
		return EXIT_FAULT
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Tape.Output = stdout

	err = emu.Load(prog)
	if err == nil {
		err = emu.Run()
	}

	if dump {
		emu.Dump(stderr)
	}

	if err != nil {
		fmt.Fprintf(stdout, "%v: %v\n", filename, err)
		return EXIT_FAULT
	}

	return EXIT_OK
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
