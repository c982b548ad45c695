package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vhornak/prioq/factory"
)

var (
	v   = viper.New()
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "prioqbench",
	Short: "Benchmark addressable priority queues against road-network Dijkstra searches",
}

// Execute runs the command tree; it is the sole entry point main calls.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("graph", "", "path to a DIMACS 9th Challenge .gr road-network file")
	flags.StringSlice("variants", []string{string(factory.BinaryHeap)}, "comma-separated queue variants to benchmark (see 'prioqbench list')")
	flags.Uint64("seed", 144, "RNG seed for source-vertex sampling")
	flags.Int("stability-window", 100, "consecutive stable samples required before a benchmark stops")
	flags.String("output", "results", "directory to write per-variant CSV results into")
	flags.String("mode", "label-set", "search mode: label-set, basic, or point-to-point")
	flags.Int("src", 1, "source vertex id (point-to-point mode)")
	flags.Int("dst", 2, "destination vertex id (point-to-point mode)")

	if err := v.BindPFlags(flags); err != nil {
		log.WithError(err).Fatal("binding flags")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}
