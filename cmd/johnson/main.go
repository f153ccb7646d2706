// Command johnson reads a weighted directed graph and prints its all-pairs
// shortest-path distance matrix, with INF for unreachable pairs.
//
// Input format: the vertex count n on the first line, then one
// "from to weight" edge per line. '#' starts a comment.
//
//	johnson -in graph.txt
//	johnson -in - < graph.txt
//	johnson                # built-in five-vertex sample
//
// Exit status is 1 on any error, including a negative-weight cycle.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/johnson"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	aligned := term.IsTerminal(int(os.Stdout.Fd()))
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv, aligned)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer,
	getenv func(string) string, aligned bool) int {
	cfg, err := loadConfig(args, getenv, stderr)
	if err != nil {
		return 2
	}

	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: log level %q: %v\n", cfg.logLevel, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	g, err := readGraph(cfg.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Info("graph loaded",
		zap.String("input", firstNonEmpty(cfg.input, "sample")),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	opts := []johnson.Option{johnson.WithContext(ctx), johnson.WithLogger(logger)}
	if cfg.paths {
		opts = append(opts, johnson.WithReturnPath())
	}
	res, err := johnson.AllPairsShortestPaths(g, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if cfg.verify {
		if err = verify(g, res); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		logger.Info("result verified against Floyd-Warshall")
	}

	if err = render(stdout, res, aligned && !cfg.plain); err == nil && cfg.paths {
		err = renderPaths(stdout, res)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: writing output: %v\n", err)
		return 1
	}

	return 0
}

// readGraph parses the configured input source.
func readGraph(input string, stdin io.Reader) (*core.Graph, error) {
	switch input {
	case "":
		return parseEdgeList(strings.NewReader(sampleInput))
	case "-":
		return parseEdgeList(stdin)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := parseEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}

	return g, nil
}
