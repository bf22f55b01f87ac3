// SPDX-License-Identifier: MIT

// Package core provides the arena-backed, undirected, weighted Graph that
// every other bestroute package works on.
//
// Nodes live in a single slice owned by the Graph and are addressed by a
// dense int index; names map to indexes through one hash map. Connections
// are (target index, distance) pairs, so a Graph never holds pointers
// between its own nodes and node identity is simply "same index".
//
// The Graph G = (V,E) has these fixed properties:
//
//   - Undirected: Connect(a, b, d) stores a→b and b→a with the same distance.
//   - Multigraph: repeating Connect(a, b, d) stores parallel connections;
//     nothing is deduplicated.
//   - No self-loops: Connect(a, a, d) creates node a but stores no connection.
//   - Non-negative weights: distances must be finite and ≥ 0.
//
// Core Methods:
//
//	AddNode(name string) (int, error)                     // O(1) amortized
//	Connect(start, end string, distance float64) error    // O(1) amortized
//	Index(name string) (int, bool)                        // O(1)
//	Name(i int) string                                    // O(1)
//	Connections(i int) []Connection                       // O(1)
//	Names() []string                                      // O(V log V), sorted
//	FromTriples(ts []Triple) (*Graph, error)              // O(len(ts))
//
// The Graph also implements graph.Weighted from
// github.com/aclements/go-moremath/graph (NumNodes, Out, OutWeight), so the
// go-moremath graph algorithms and the Graphviz writer run on it unchanged.
//
// Concurrency:
//
// All methods are guarded by one sync.RWMutex: building from several
// goroutines is safe, and queries take the read lock. Slices returned by
// Connections and Out alias internal storage and must not be modified.
// Per-query state (distances, predecessors) is never stored on the Graph.
package core
