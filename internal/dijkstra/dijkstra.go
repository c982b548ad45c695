// Package dijkstra implements shortest-path search over a graph.Graph using
// any queue.Interface as its frontier, grounded on
// original_source/PrioQueues/Dijkstra.h. It ports the original's three
// search variants: pointToPointSearch, pointToAllLabelSet, and
// pointToAllBasic.
package dijkstra

import (
	"golang.org/x/exp/constraints"

	"github.com/pkg/errors"

	"github.com/vhornak/prioq/internal/graph"
	"github.com/vhornak/prioq/internal/stopwatch"
	"github.com/vhornak/prioq/queue"
)

// Weight is an edge-cost type usable both as a graph.Weight and as a
// queue.Priority, the intersection the original's single template
// parameter N occupied implicitly.
type Weight interface {
	graph.Weight
	constraints.Ordered
}

// PathInfo reports the outcome of a search, mirroring the original's
// PathInfo<N>.
type PathInfo[W Weight] struct {
	Length       W
	TimeTaken    int64
	NodesVisited int
}

// ErrNoPath is returned by PointToPointSearch when no path connects the
// requested vertices. The original signals this by returning nullptr.
var ErrNoPath = errors.New("dijkstra: no path to destination")

type label[W Weight] struct {
	dist  W
	entry queue.Entry[W, *graph.Vertex[W]]
}

// PointToPointSearch finds the shortest path from idSrc to idDst using the
// label-setting algorithm: the frontier starts with only the source vertex
// and the search stops as soon as idDst is popped.
func PointToPointSearch[W Weight](g *graph.Graph[W], pq queue.Interface[W, *graph.Vertex[W]], idSrc, idDst int) (*PathInfo[W], error) {
	src := g.Vertex(idSrc)
	dst := g.Vertex(idDst)
	if src == nil || dst == nil {
		return nil, errors.New("dijkstra: unknown vertex id")
	}

	labels := make(map[int]*label[W], g.VertexCount())
	sw := stopwatch.New()

	labels[src.ID] = &label[W]{dist: g.ZeroDistance}
	labels[src.ID].entry = pq.Insert(src, g.ZeroDistance)

	visited := 0

	for !pq.IsEmpty() {
		popped, err := pq.DeleteMin()
		if err != nil {
			return nil, errors.Wrap(err, "dijkstra: delete min")
		}
		if popped == dst {
			break
		}

		poppedDist := labels[popped.ID].dist
		for _, edge := range popped.Edges() {
			newCost := poppedDist + edge.Cost
			target := edge.Target

			tl, known := labels[target.ID]
			if !known {
				tl = &label[W]{dist: g.MaxDistance}
				labels[target.ID] = tl
			}

			if newCost < tl.dist {
				tl.dist = newCost
				if tl.entry != nil {
					if err := pq.DecreaseKey(tl.entry, newCost); err != nil {
						return nil, errors.Wrap(err, "dijkstra: decrease key")
					}
				} else {
					tl.entry = pq.Insert(target, newCost)
					visited++
				}
			}
		}
	}

	timeTaken := sw.ElapsedMillis()

	dl, found := labels[dst.ID]
	if !found || dl.dist == g.MaxDistance {
		return nil, ErrNoPath
	}

	return &PathInfo[W]{Length: dl.dist, TimeTaken: timeTaken, NodesVisited: visited}, nil
}

// PointToAllLabelSet finds shortest paths from idSrc to every reachable
// vertex using the label-setting algorithm, again starting with only the
// source vertex in the frontier.
func PointToAllLabelSet[W Weight](g *graph.Graph[W], pq queue.Interface[W, *graph.Vertex[W]], idSrc int) (*PathInfo[W], error) {
	src := g.Vertex(idSrc)
	if src == nil {
		return nil, errors.New("dijkstra: unknown vertex id")
	}

	labels := make(map[int]*label[W], g.VertexCount())
	sw := stopwatch.New()

	labels[src.ID] = &label[W]{dist: g.ZeroDistance}
	labels[src.ID].entry = pq.Insert(src, g.ZeroDistance)

	visited := 1

	for !pq.IsEmpty() {
		popped, err := pq.DeleteMin()
		if err != nil {
			return nil, errors.Wrap(err, "dijkstra: delete min")
		}

		poppedDist := labels[popped.ID].dist
		for _, edge := range popped.Edges() {
			newCost := poppedDist + edge.Cost
			target := edge.Target

			tl, known := labels[target.ID]
			if !known {
				tl = &label[W]{dist: g.MaxDistance}
				labels[target.ID] = tl
			}

			if newCost < tl.dist {
				tl.dist = newCost
				if tl.entry != nil {
					if err := pq.DecreaseKey(tl.entry, newCost); err != nil {
						return nil, errors.Wrap(err, "dijkstra: decrease key")
					}
				} else {
					tl.entry = pq.Insert(target, newCost)
					visited++
				}
			}
		}
	}

	return &PathInfo[W]{Length: g.ZeroDistance, TimeTaken: sw.ElapsedMillis(), NodesVisited: visited}, nil
}

// PointToAllBasic finds shortest paths from idSrc to every vertex using the
// textbook (Introduction to Algorithms) formulation: every vertex is
// inserted into the frontier up front at MaxDistance, and the source is
// then lowered to ZeroDistance via DecreaseKey.
func PointToAllBasic[W Weight](g *graph.Graph[W], pq queue.Interface[W, *graph.Vertex[W]], idSrc int) (*PathInfo[W], error) {
	src := g.Vertex(idSrc)
	if src == nil {
		return nil, errors.New("dijkstra: unknown vertex id")
	}

	labels := make(map[int]*label[W], g.VertexCount())
	sw := stopwatch.New()

	for _, v := range g.Vertices() {
		l := &label[W]{dist: g.MaxDistance}
		l.entry = pq.Insert(v, g.MaxDistance)
		labels[v.ID] = l
	}

	labels[src.ID].dist = g.ZeroDistance
	if err := pq.DecreaseKey(labels[src.ID].entry, g.ZeroDistance); err != nil {
		return nil, errors.Wrap(err, "dijkstra: decrease key")
	}

	visited := 1
	total := g.VertexCount()

	for !pq.IsEmpty() {
		if visited == total {
			break
		}

		popped, err := pq.DeleteMin()
		if err != nil {
			return nil, errors.Wrap(err, "dijkstra: delete min")
		}

		poppedDist := labels[popped.ID].dist
		for _, edge := range popped.Edges() {
			newCost := poppedDist + edge.Cost
			target := edge.Target
			tl := labels[target.ID]

			if newCost < tl.dist {
				if tl.dist == g.MaxDistance {
					visited++
				}
				tl.dist = newCost
				if err := pq.DecreaseKey(tl.entry, newCost); err != nil {
					return nil, errors.Wrap(err, "dijkstra: decrease key")
				}
			}
		}
	}

	return &PathInfo[W]{Length: g.ZeroDistance, TimeTaken: sw.ElapsedMillis(), NodesVisited: visited}, nil
}
