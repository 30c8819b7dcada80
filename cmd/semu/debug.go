package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"semu/debug"
	"semu/interp"
)

var debugCmd = &cobra.Command{
	Use:   "debug <program.xml> [x1 x2 ...]",
	Short: "step a program forward and backward, inspecting state at each step",
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

		runner := interp.NewRunner()
		if flagCycleBudget > 0 {
			runner.CycleBudget = flagCycleBudget
		}
		session, err := debug.Initialize(prog, inputs, depth, runner, flagStepCeiling)
		if err != nil {
			return err
		}

		out := colorable.NewColorable(os.Stdout)
		colorize := isatty.IsTerminal(os.Stdout.Fd())
		printState(out, session, colorize)

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Fprintln(out, "commands: n(ext), p(rev), q(uit)")
		for scanner.Scan() {
			switch strings.TrimSpace(scanner.Text()) {
			case "n", "":
				more, err := session.StepForward()
				if err != nil {
					fmt.Fprintln(out, err)
					break
				}
				printState(out, session, colorize)
				if !more {
					fmt.Fprintln(out, "program finished")
				}
			case "p":
				if !session.StepBackward() {
					fmt.Fprintln(out, "already at the initial state")
				}
				printState(out, session, colorize)
			case "q":
				return nil
			default:
				fmt.Fprintln(out, "commands: n(ext), p(rev), q(uit)")
			}
		}
		return nil
	},
}

func printState(out io.Writer, session *debug.Session, colorize bool) {
	log.Debugf("debug step: pc state snapshot")
	frame := session.Current()
	names := make([]string, 0, len(frame.Vars))
	for name := range frame.Vars {
		names = append(names, name)
	}
	sort.Strings(names)

	line := fmt.Sprintf("pc=%d cycles=%d", frame.PC, frame.Cycles)
	if colorize {
		line = "\x1b[1m" + line + "\x1b[0m"
	}
	fmt.Fprintln(out, line)
	for _, name := range names {
		fmt.Fprintf(out, "  %s = %d\n", name, frame.Vars[name])
	}
}
