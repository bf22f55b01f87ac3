// SPDX-License-Identifier: MIT

// Package bestroute finds the shortest route between two named nodes of a
// weighted, undirected graph read from a plain "start,end,distance" file.
//
// The module is organised in small packages:
//
//	core/       — arena-backed Graph: Node, Connection, Triple
//	mapfile/    — map file parser and importer (file → core.Graph)
//	dijkstra/   — FindBestRoute: Dijkstra relaxation + route reconstruction
//	converters/ — Graphviz dot output and connected components (go-moremath)
//	cmd/bestroute — command-line front end
//
// Quick example:
//
//	S───1───A
//	 \      │
//	  4     2
//	   \    │
//	    ────E
//
//	g, _ := mapfile.Import(strings.NewReader("S,A,1\nA,E,2\nS,E,4\n"))
//	route, ok := dijkstra.FindBestRoute(g, "S", "E")
//	// ok == true, route == S(0) → A(1) → E(3)
//
//	go install github.com/katalvlaran/bestroute/cmd/bestroute@latest
package bestroute
