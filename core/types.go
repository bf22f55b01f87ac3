// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Connection, Triple and Graph declarations, sentinel errors,
//       and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a node name is the empty string.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrBadDistance indicates a negative, NaN or infinite connection distance.
	ErrBadDistance = errors.New("core: distance must be finite and non-negative")

	// ErrNodeNotFound indicates a lookup of a name or index that is not in the Graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Triple is one input record: an undirected connection between Start and End.
type Triple struct {
	Start    string
	End      string
	Distance float64
}

// Connection is a weighted link from the owning node to the node at index To.
type Connection struct {
	// To is the arena index of the target node.
	To int

	// Distance is the non-negative weight of the link.
	Distance float64

	// Mirror is true for the reverse half created by Connect (end → start).
	Mirror bool
}

// Node is a named vertex. Its index in the Graph arena is its identity.
type Node struct {
	// Name uniquely identifies this Node within its Graph.
	Name string

	// Connections holds outgoing links in insertion order.
	Connections []Connection
}

// Graph is an undirected multigraph stored as a node arena.
//
// mu guards nodes, index and out. out[i] mirrors the targets of
// nodes[i].Connections so Out can be served without allocation.
type Graph struct {
	mu sync.RWMutex

	nodes []Node         // arena; index is node identity
	index map[string]int // name → arena index
	out   [][]int        // out[i][e] == nodes[i].Connections[e].To

	links int // number of Connect calls that stored a pair
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}
