package main

import (
	"flag"
	"io"
	"strings"
)

// Environment variables providing flag defaults. A .env file in the working
// directory is loaded first when present.
const (
	envInput    = "APSP_INPUT"
	envLogLevel = "APSP_LOG_LEVEL"
)

const defaultLogLevel = "warn"

// config holds the resolved command-line settings.
type config struct {
	input    string // edge-list path; "-" reads stdin; empty uses sampleInput
	logLevel string
	paths    bool // print one shortest route per reachable pair
	plain    bool // force single-space output even on a terminal
	verify   bool // cross-check against dense Floyd–Warshall
}

// loadConfig resolves flags over environment defaults.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	cfg := config{
		input:    strings.TrimSpace(getenv(envInput)),
		logLevel: firstNonEmpty(strings.TrimSpace(getenv(envLogLevel)), defaultLogLevel),
	}

	fs := flag.NewFlagSet("johnson", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "in", cfg.input, `edge-list file ("-" for stdin, empty for the built-in sample)`)
	fs.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.paths, "paths", false, "also print one shortest path per reachable pair")
	fs.BoolVar(&cfg.plain, "plain", false, "space-separated output even on a terminal")
	fs.BoolVar(&cfg.verify, "verify", false, "cross-check the result with Floyd-Warshall")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}
