package graph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/internal/graph"
)

func TestAddVertexAndEdges(t *testing.T) {
	g := graph.New[int64]("test", 0, 1<<30, 4)
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	g.AddEdgeBi(1, 2, 5)
	g.AddEdgeDirected(2, 3, 7)

	require.Equal(t, 3, g.VertexCount())
	v1 := g.Vertex(1)
	require.Len(t, v1.Edges(), 1)
	require.Equal(t, int64(5), v1.Edges()[0].Cost)
	require.Equal(t, 2, v1.Edges()[0].Target.ID)

	v2 := g.Vertex(2)
	require.Len(t, v2.Edges(), 2) // back-edge to 1, plus directed to 3
}

func TestLoadRoads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.gr")
	contents := "c tiny test graph\n" +
		"p sp 3 2\n" +
		"c more comments\n" +
		"a 1 2 10\n" +
		"a 2 3 20\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	g, err := graph.LoadRoads(logrus.New(), "tiny", path)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Len(t, g.Vertex(1).Edges(), 1)
	require.Len(t, g.Vertex(2).Edges(), 2)
}

func TestLoadRoadsMissingFile(t *testing.T) {
	_, err := graph.LoadRoads(logrus.New(), "missing", "/no/such/file.gr")
	require.Error(t, err)
}
