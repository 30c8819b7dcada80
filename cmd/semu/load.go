package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"semu"
	"semu/parser"
)

// loadProgram opens path and parses it into a validated Program.
func loadProgram(path string) (*semu.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	prog, err := parser.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return prog, nil
}

// parseInputs converts the positional argument list trailing a program path
// into the int64 vector bound to x1, x2, ...
func parseInputs(args []string) ([]int64, error) {
	inputs := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d (%q) is not an integer", i+1, a)
		}
		inputs[i] = v
	}
	return inputs, nil
}
