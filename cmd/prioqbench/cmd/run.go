package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vhornak/prioq/factory"
	"github.com/vhornak/prioq/internal/config"
	"github.com/vhornak/prioq/internal/dijkstra"
	"github.com/vhornak/prioq/internal/graph"
	"github.com/vhornak/prioq/internal/rng"
	"github.com/vhornak/prioq/internal/stabilizer"
	"github.com/vhornak/prioq/queue"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Dijkstra benchmark for each configured queue variant",
	RunE:  runBenchmark,
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper(v)
	if cfg.GraphPath == "" {
		return errors.New("prioqbench: --graph is required")
	}

	name := filepath.Base(cfg.GraphPath)
	g, err := graph.LoadRoads(log, name, cfg.GraphPath)
	if err != nil {
		return errors.Wrap(err, "prioqbench: loading road graph")
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return errors.Wrap(err, "prioqbench: creating output directory")
	}

	for _, variantName := range cfg.Variants {
		variant := factory.Variant(variantName)
		if variant == factory.BoostFibonacciHeap {
			log.WithField("variant", variant).Warn("skipping: third-party variant is fixed at float32 priorities, incompatible with int64 road weights")
			continue
		}

		if err := runVariant(cfg, g, variant); err != nil {
			return errors.Wrapf(err, "prioqbench: variant %q", variant)
		}
	}

	return nil
}

func runVariant(cfg *config.Config, g *graph.Graph[int64], variant factory.Variant) error {
	logEntry := log.WithFields(map[string]interface{}{
		"variant": variant,
		"mode":    cfg.Mode,
		"graph":   g.Name,
	})
	logEntry.Info("starting benchmark")

	if cfg.Mode == config.ModePointToPoint {
		pq, err := factory.New[int64, *graph.Vertex[int64]](variant)
		if err != nil {
			return err
		}
		info, err := dijkstra.PointToPointSearch[int64](g, pq, cfg.SrcID, cfg.DstID)
		if err != nil {
			return errors.Wrap(err, "point-to-point search")
		}
		logEntry.WithFields(map[string]interface{}{
			"length":        info.Length,
			"time_ms":       info.TimeTaken,
			"nodes_visited": info.NodesVisited,
		}).Info("path found")
		return nil
	}

	gen := rng.New(cfg.Seed)
	stab := stabilizer.New(cfg.StabilityWindow)
	replications := 0

	for !stab.IsStable() {
		src := int(gen.NextUniqueUint64(1, uint64(g.VertexCount())))

		pq, err := factory.New[int64, *graph.Vertex[int64]](variant)
		if err != nil {
			return err
		}

		info, err := runSearch(cfg.Mode, g, pq, src)
		if err != nil {
			return errors.Wrap(err, "search")
		}

		stab.AddValue(info.TimeTaken)
		replications++
	}

	logEntry.WithFields(map[string]interface{}{
		"replications": replications,
		"avg_ms":       stab.LastAverage(),
	}).Info("benchmark stabilized")

	resultPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_result.csv", variant))
	line := fmt.Sprintf("%d;%f\n", g.VertexCount(), stab.LastAverage())
	if err := os.WriteFile(resultPath, []byte(line), 0o644); err != nil {
		return errors.Wrap(err, "writing result csv")
	}

	return nil
}

func runSearch(mode config.Mode, g *graph.Graph[int64], pq queue.Interface[int64, *graph.Vertex[int64]], src int) (*dijkstra.PathInfo[int64], error) {
	switch mode {
	case config.ModeBasic:
		return dijkstra.PointToAllBasic[int64](g, pq, src)
	case config.ModeLabelSet, "":
		return dijkstra.PointToAllLabelSet[int64](g, pq, src)
	default:
		return nil, errors.Errorf("prioqbench: unknown mode %q", mode)
	}
}
