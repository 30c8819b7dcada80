package main

import (
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
)

// dumpCmd is the spiritual successor to the teacher's debug/objdump.go: it
// parses a document and pretty-prints the resulting AST directly, for
// inspecting what the parser actually built without formatting it through
// Display.
var dumpCmd = &cobra.Command{
	Use:   "dump <program.xml>",
	Short: "pretty-print the parsed program AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := loadProgram(args[0])
		if err != nil {
			return err
		}
		pp.Println(prog)
		return nil
	},
}
