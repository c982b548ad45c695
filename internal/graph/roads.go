package graph

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LoadRoads parses a 9th DIMACS Challenge shortest-path ".gr" file, grounded
// on original_source/PrioQueues/Roads.h. Unlike the original, which skips a
// fixed number of header lines positionally and returns nullptr on a
// missing file, this parser is tolerant of interleaved "c" comment lines
// and wraps a missing/unreadable file in *os.PathError via pkg/errors
// instead of returning a nil graph.
func LoadRoads(log *logrus.Logger, name, path string) (*Graph[int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graph: load roads %q", path)
	}
	defer f.Close()

	var vertexCount, edgeCount int
	var g *Graph[int64]

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			// "p sp <vertexCount> <edgeCount>"
			if len(fields) < 4 {
				return nil, errors.Errorf("graph: malformed problem line %q", line)
			}
			vertexCount, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "graph: problem line vertex count %q", line)
			}
			edgeCount, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrapf(err, "graph: problem line edge count %q", line)
			}
			g = New[int64](name, 0, maxInt64/2, vertexCount+1)
			for i := 1; i <= vertexCount; i++ {
				g.AddVertex(i)
			}
		case "a":
			// "a <src> <dst> <weight>"
			if g == nil {
				return nil, errors.New("graph: arc line before problem line")
			}
			if len(fields) < 4 {
				return nil, errors.Errorf("graph: malformed arc line %q", line)
			}
			src, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, errors.Wrapf(err, "graph: arc source %q", line)
			}
			dst, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "graph: arc target %q", line)
			}
			weight, err := strconv.ParseInt(fields[3], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "graph: arc weight %q", line)
			}
			g.AddEdgeBi(src, dst, weight)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "graph: scanning %q", path)
	}
	if g == nil {
		return nil, errors.Errorf("graph: %q has no problem line", path)
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"name":     name,
			"vertices": vertexCount,
			"edges":    edgeCount,
		}).Info("road graph loaded")
	}

	return g, nil
}

const maxInt64 = int64(^uint64(0) >> 1)
