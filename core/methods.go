// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Node lifecycle, connection building and read-only queries.
// Determinism:
//   - Node indexes are assigned in first-seen order.
//   - Names() returns names sorted ascending.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode returns the index of the node called name, creating it first if
// it does not exist yet. Lookup is by exact byte equality.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(name), nil
}

// addNodeLocked implements AddNode; caller must hold mu for writing.
func (g *Graph) addNodeLocked(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, Node{Name: name})
	g.out = append(g.out, nil)
	g.index[name] = i

	return i
}

// Connect records an undirected link of the given distance between start
// and end, creating either node on first sight.
//
// Steps:
//  1. Validate names and distance.
//  2. Look up or create both nodes.
//  3. If start == end, stop: the node exists but gets no self-loop.
//  4. Append start→end and the mirrored end→start connection.
//
// Parallel links between the same pair are kept as separate connections.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(start, end string, distance float64) error {
	if start == "" || end == "" {
		return ErrEmptyName
	}
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return fmt.Errorf("%w: %s–%s distance=%v", ErrBadDistance, start, end, distance)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.addNodeLocked(start)
	e := g.addNodeLocked(end)
	if s == e {
		return nil
	}

	g.nodes[s].Connections = append(g.nodes[s].Connections, Connection{To: e, Distance: distance})
	g.out[s] = append(g.out[s], e)
	g.nodes[e].Connections = append(g.nodes[e].Connections, Connection{To: s, Distance: distance, Mirror: true})
	g.out[e] = append(g.out[e], s)
	g.links++

	return nil
}

// FromTriples builds a Graph by calling Connect for each triple in order.
// The first failing triple aborts the build and no Graph is returned.
func FromTriples(ts []Triple) (*Graph, error) {
	g := NewGraph()
	for i, t := range ts {
		if err := g.Connect(t.Start, t.End, t.Distance); err != nil {
			return nil, fmt.Errorf("triple %d: %w", i, err)
		}
	}

	return g, nil
}

// Index returns the arena index of the node called name.
func (g *Graph) Index(name string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[name]

	return i, ok
}

// HasNode reports whether a node called name exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.Index(name)
	return ok
}

// Name returns the name of node i. It panics if i is out of range.
func (g *Graph) Name(i int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[i].Name
}

// Node returns a copy of the node called name. The Connections slice of
// the copy aliases the Graph's storage.
func (g *Graph) Node(name string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[name]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return g.nodes[i], nil
}

// Connections returns the outgoing connections of node i in insertion order.
func (g *Graph) Connections(i int) []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[i].Connections
}

// Names returns all node names sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Names() []string {
	g.mu.RLock()
	names := make([]string, len(g.nodes))
	for i := range g.nodes {
		names[i] = g.nodes[i].Name
	}
	g.mu.RUnlock()
	sort.Strings(names)

	return names
}

// NumLinks returns the number of undirected links stored, i.e. half the
// number of connections.
func (g *Graph) NumLinks() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links
}

// NumNodes returns the number of nodes. Nodes are numbered 0..NumNodes()-1.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Out returns the target indexes of node i's connections, one per
// connection, in the same order as Connections(i).
func (g *Graph) Out(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.out[i]
}

// OutWeight returns the distance of the e'th connection of node i.
func (g *Graph) OutWeight(i, e int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[i].Connections[e].Distance
}
