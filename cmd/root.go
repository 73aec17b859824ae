// Package cmd implements the command-line entrypoint: a single positional
// input root directory holding one subdirectory per scenario, each with its
// own config.yml and scenario.yml.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	debugVerbose bool
	infoVerbose  bool
	preemptFlag  string
	seedFlag     int64
	seedSet      bool
)

var rootCmd = &cobra.Command{
	Use:   "noc-sim <input-dir>",
	Short: "Cycle-accurate 2D-mesh NoC simulator for periodic real-time traffic",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		level := logrus.WarnLevel
		switch {
		case debugVerbose:
			level = logrus.DebugLevel
		case infoVerbose:
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)

		logrus.Info("###################################################################")
		logrus.Info("### cycle-accurate mesh NoC analysis and simulation            ###")
		logrus.Info("###################################################################")

		opts := RunOptions{
			PreemptionOverride: preemptFlag,
			SeedOverride:       seedFlag,
			SeedOverrideSet:    seedSet,
		}
		if err := RunAll(args[0], opts); err != nil {
			logrus.Errorf("%v", err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command, exiting the process with a non-zero code
// on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&debugVerbose, "debug", "d", false, "debug-level logging")
	rootCmd.Flags().BoolVarP(&infoVerbose, "info", "i", false, "info-level logging")
	rootCmd.Flags().StringVar(&preemptFlag, "preemption-mode", "", "override config's preemption mode: forbid or side_queue")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "override config's UUniFast RNG seed")

	rootCmd.PreRun = func(cmd *cobra.Command, args []string) {
		seedSet = cmd.Flags().Changed("seed")
	}
}
