// SPDX-License-Identifier: MIT

// Command bestroute prints the shortest route between two nodes of a map
// file, one "name distance" line per node, in route order.
//
// Usage:
//
//	bestroute [-map FILE] [-from NAME] [-to NAME] [-heap] [-dot FILE] [-all] [-v]
//	bestroute [flags] MAP FROM TO
//
// Defaults come from BESTROUTE_MAP, BESTROUTE_FROM and BESTROUTE_TO, which
// may be set in a .env file (path overridable with BESTROUTE_ENV).
//
// Exit status is 0 when a route was printed, 1 when there is no route
// between the two names, and 2 on usage or input errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/bestroute/dijkstra"
	"github.com/katalvlaran/bestroute/mapfile"
)

const (
	exitOK      = 0
	exitNoRoute = 1
	exitError   = 2
)

func main() {
	logger := log.New(os.Stderr, "bestroute: ", 0)

	envPath := orDefault(os.Getenv(envFile), defaultEnvFile)
	getenv, envErr := envLookup(envPath, os.Getenv)

	cfg, err := loadConfig(os.Args[1:], getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(exitOK)
	}
	if err != nil {
		logger.Println(err)
		os.Exit(exitError)
	}
	if cfg.Verbose && envErr != nil {
		logger.Printf("No %s file loaded, using environment and flags", envPath)
	}

	os.Exit(run(cfg, os.Stdout, logger))
}

// run imports the map, searches the route and prints it to stdout.
// It returns the process exit status.
func run(cfg Config, stdout io.Writer, logger *log.Logger) int {
	g, err := mapfile.ImportFile(cfg.MapPath)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		return exitError
	}
	if cfg.Verbose {
		logger.Printf("Loaded map from %s: %d nodes, %d links", cfg.MapPath, g.NumNodes(), g.NumLinks())
	}

	var opts []dijkstra.Option
	if cfg.Heap {
		opts = append(opts, dijkstra.WithSelector(dijkstra.SelectHeap))
	}

	route, ok := dijkstra.FindBestRoute(g, cfg.From, cfg.To, opts...)
	if cfg.Verbose {
		logger.Printf("Route %q -> %q: found=%t hops=%d", cfg.From, cfg.To, ok, len(route))
	}

	if cfg.DotPath != "" {
		if err := writeDOTFile(cfg.DotPath, g, route); err != nil {
			logger.Printf("ERROR: %v", err)
			return exitError
		}
		if cfg.Verbose {
			logger.Printf("Wrote dot graph to %s", cfg.DotPath)
		}
	}

	if cfg.All {
		if err := printDistances(stdout, g, cfg.From, opts); err != nil {
			logger.Printf("Warning: %v", err)
		}
	}

	if !ok {
		fmt.Fprintf(stdout, "invalid start/end: no route from %q to %q\n", cfg.From, cfg.To)
		if cfg.Verbose {
			explainNoRoute(logger, g, cfg.From, cfg.To)
		}
		return exitNoRoute
	}

	for _, hop := range route {
		fmt.Fprintf(stdout, "%s %s\n", hop.Name, formatDistance(hop.Distance))
	}

	return exitOK
}
