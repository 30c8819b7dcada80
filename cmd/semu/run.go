package main

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"semu/interp"
)

var runCmd = &cobra.Command{
	Use:   "run <program.xml> [x1 x2 ...]",
	Short: "execute a program and print its output variable, final state and cycle count",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := loadProgram(args[0])
		if err != nil {
			return err
		}
		inputs, err := parseInputs(args[1:])
		if err != nil {
			return err
		}

		depth := resolveDepth(prog)
		target := prog
		if depth > 0 {
			target, err = expandTo(prog, depth)
			if err != nil {
				return err
			}
		}

		runner := interp.NewRunner()
		if flagCycleBudget > 0 {
			runner.CycleBudget = flagCycleBudget
		}
		log.Debugf("running %s at depth %d with inputs %v", prog.Name, depth, inputs)

		result, err := runner.Run(target, inputs, depth)
		if err != nil {
			return err
		}

		fmt.Printf("y = %d\n", result.Y)
		fmt.Printf("cycles = %d\n", result.Cycles)
		names := make([]string, 0, len(result.Variables))
		for name := range result.Variables {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s = %d\n", name, result.Variables[name])
		}
		return nil
	},
}
