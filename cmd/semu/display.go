package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"semu"
)

var displayCmd = &cobra.Command{
	Use:   "display <program.xml>",
	Short: "print a program's instructions at a given expansion depth",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := loadProgram(args[0])
		if err != nil {
			return err
		}
		depth := resolveDepth(prog)
		log.Debugf("displaying %s at depth %d", prog.Name, depth)
		if depth > 0 {
			expanded, err := expandTo(prog, depth)
			if err != nil {
				return err
			}
			prog = expanded
		}
		fmt.Print(semu.Display(prog, depth))
		return nil
	},
}

// resolveDepth clamps the requested --depth flag to what prog actually
// supports, so "display" never fails outright over a QUOTE-bearing program:
// it just falls back to depth 0.
func resolveDepth(prog *semu.Program) int {
	max := prog.MaxExpansionDepth()
	if flagDepth < max {
		return flagDepth
	}
	return max
}
