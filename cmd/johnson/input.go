package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/apsp/core"
)

var (
	// ErrMissingHeader indicates the input had no vertex-count line.
	ErrMissingHeader = errors.New("input: missing vertex count")

	// ErrBadLine indicates a line that is neither a count nor "from to weight".
	ErrBadLine = errors.New("input: malformed line")
)

// parseEdgeList reads a vertex count followed by one "from to weight" edge
// per line. Text after '#' and blank lines are ignored.
func parseEdgeList(r io.Reader) (*core.Graph, error) {
	var g *core.Graph
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if g == nil {
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: want vertex count, got %q", ErrBadLine, lineNo, line)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, lineNo, err)
			}
			if g, err = core.NewGraph(n); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want \"from to weight\", got %q", ErrBadLine, lineNo, line)
		}
		from, err1 := strconv.Atoi(fields[0])
		to, err2 := strconv.Atoi(fields[1])
		w, err3 := strconv.ParseInt(fields[2], 10, 64)
		if err := errors.Join(err1, err2, err3); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, lineNo, err)
		}
		if err := g.AddEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrMissingHeader
	}

	return g, nil
}

// sampleInput is the built-in scenario used when no input is given.
const sampleInput = `# five vertices, negative edges, no negative cycle
5
0 1 -2
1 2 3
2 0 2
0 3 4
3 4 5
4 2 -1
`
