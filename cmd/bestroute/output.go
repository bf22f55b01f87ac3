// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/bestroute/converters"
	"github.com/katalvlaran/bestroute/core"
	"github.com/katalvlaran/bestroute/dijkstra"
)

// formatDistance prints d with the fewest digits that round-trip.
func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// printDistances writes "name distance" for every node, sorted by name,
// with "unreachable" for nodes outside the start node's component.
func printDistances(w io.Writer, g *core.Graph, from string, opts []dijkstra.Option) error {
	dist, err := dijkstra.ShortestDistances(g, from, opts...)
	if err != nil {
		return err
	}
	for _, name := range g.Names() {
		d := dist[name]
		if math.IsInf(d, 1) {
			fmt.Fprintf(w, "%s unreachable\n", name)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", name, formatDistance(d))
	}
	fmt.Fprintln(w)

	return nil
}

// explainNoRoute logs why no route was found.
func explainNoRoute(logger *log.Logger, g *core.Graph, from, to string) {
	switch {
	case !g.HasNode(from):
		logger.Printf("Start node %q is not in the map", from)
	case !g.HasNode(to):
		logger.Printf("End node %q is not in the map", to)
	case !converters.SameComponent(g, from, to):
		logger.Printf("%q and %q lie in different components (%d components in map)",
			from, to, len(converters.Components(g)))
	}
}

// writeDOTFile renders g with route highlighted into path.
func writeDOTFile(path string, g *core.Graph, route dijkstra.Route) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create dot file: %w", err)
	}
	if err := converters.WriteDOT(f, g, route); err != nil {
		f.Close()
		return fmt.Errorf("could not write dot file: %w", err)
	}

	return f.Close()
}
