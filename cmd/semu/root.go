package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagCycleBudget int64
	flagStepCeiling int
	flagDepth       int
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "semu",
	Short: "S-language register machine emulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	rootCmd.PersistentFlags().Int64Var(&flagCycleBudget, "cycle-budget", 0,
		"maximum cycles before a run aborts (0 = default 1,000,000)")
	rootCmd.PersistentFlags().IntVar(&flagStepCeiling, "step-ceiling", 0,
		"maximum forward steps in a debug session (0 = default 1,000)")
	rootCmd.PersistentFlags().IntVar(&flagDepth, "depth", 0,
		"expansion depth to run/display/debug at (0 or 1)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug-level logging")

	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(dumpCmd)
}
