// Command prioqbench benchmarks the priority-queue variants in this module
// against road-network Dijkstra searches, grounded on
// original_source/PrioQueues/main.cpp's testCorrectness/labelSetExperiment/
// basicDijkstraExperiment harness.
package main

import (
	"os"

	"github.com/vhornak/prioq/cmd/prioqbench/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
