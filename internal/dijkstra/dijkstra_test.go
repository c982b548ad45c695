package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/binaryheap"
	"github.com/vhornak/prioq/internal/dijkstra"
	"github.com/vhornak/prioq/internal/graph"
	"github.com/vhornak/prioq/queue"
)

// buildGraph makes:
//
//	1 --2--> 2 --2--> 4
//	1 --10-------------^
//	1 --1--> 3 --1--> 4
func buildGraph() *graph.Graph[int64] {
	g := graph.New[int64]("test", 0, 1<<30, 4)
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	g.AddVertex(4)
	g.AddEdgeDirected(1, 2, 2)
	g.AddEdgeDirected(2, 4, 2)
	g.AddEdgeDirected(1, 4, 10)
	g.AddEdgeDirected(1, 3, 1)
	g.AddEdgeDirected(3, 4, 1)
	return g
}

func newQueue() queue.Interface[int64, *graph.Vertex[int64]] {
	return binaryheap.New[int64, *graph.Vertex[int64]]()
}

func TestPointToPointSearch(t *testing.T) {
	g := buildGraph()
	info, err := dijkstra.PointToPointSearch[int64](g, newQueue(), 1, 4)
	require.NoError(t, err)
	require.Equal(t, int64(2), info.Length) // via 1->3->4
}

func TestPointToPointSearchNoPath(t *testing.T) {
	g := buildGraph()
	g.AddVertex(5)
	_, err := dijkstra.PointToPointSearch[int64](g, newQueue(), 1, 5)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestPointToAllLabelSet(t *testing.T) {
	g := buildGraph()
	info, err := dijkstra.PointToAllLabelSet[int64](g, newQueue(), 1)
	require.NoError(t, err)
	require.Equal(t, 4, info.NodesVisited)
}

func TestPointToAllBasic(t *testing.T) {
	g := buildGraph()
	info, err := dijkstra.PointToAllBasic[int64](g, newQueue(), 1)
	require.NoError(t, err)
	require.Equal(t, 4, info.NodesVisited)
}
