package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"semu"
	semuexpand "semu/expand"
)

var expandCmd = &cobra.Command{
	Use:   "expand <program.xml>",
	Short: "expand every synthetic instruction one level and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := loadProgram(args[0])
		if err != nil {
			return err
		}
		expanded, err := expandTo(prog, 1)
		if err != nil {
			return err
		}
		fmt.Print(semu.Display(expanded, 1))
		return nil
	},
}

// expandTo expands prog to depth, returning an unchanged copy at depth 0.
func expandTo(prog *semu.Program, depth int) (*semu.Program, error) {
	return semuexpand.Expand(prog, depth)
}
