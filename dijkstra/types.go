// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned (or raised) by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist in the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrSelfPredecessor is the panic value used when the search tries to make
	// a node its own predecessor.
	ErrSelfPredecessor = errors.New("dijkstra: node cannot be its own predecessor")

	// ErrBadSelector indicates an unknown Selector value.
	ErrBadSelector = errors.New("dijkstra: unknown selector")
)

// Selector chooses how the next node to settle is found.
type Selector int

const (
	// SelectLinear scans every unsettled node each round.
	SelectLinear Selector = iota

	// SelectHeap keeps reached nodes in a binary min-heap.
	SelectHeap
)

// String returns the lower-case name of the selector.
func (s Selector) String() string {
	switch s {
	case SelectLinear:
		return "linear"
	case SelectHeap:
		return "heap"
	default:
		return "selector(" + strconv.Itoa(int(s)) + ")"
	}
}

// Options configures a search.
//
// Selector – the node selection strategy. Default SelectLinear.
type Options struct {
	Selector Selector
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithSelector sets the selection strategy. Unknown values panic with
// ErrBadSelector when the option is applied.
func WithSelector(s Selector) Option {
	return func(o *Options) {
		if s != SelectLinear && s != SelectHeap {
			panic(ErrBadSelector.Error())
		}
		o.Selector = s
	}
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Selector: SelectLinear}
}

// Hop is one node on a Route together with its cumulative distance from
// the start node.
type Hop struct {
	Name     string
	Distance float64
}

// Route is the ordered path from the start node to the end node.
// Distances are non-decreasing along the route.
type Route []Hop

// Total returns the distance of the last hop, or 0 for an empty route.
func (r Route) Total() float64 {
	if len(r) == 0 {
		return 0
	}

	return r[len(r)-1].Distance
}

// Names returns the node names along the route.
func (r Route) Names() []string {
	names := make([]string, len(r))
	for i, h := range r {
		names[i] = h.Name
	}

	return names
}

// String renders the route as "S(0) → A(1) → E(3)".
func (r Route) String() string {
	var b strings.Builder
	for i, h := range r {
		if i > 0 {
			b.WriteString(" → ")
		}
		b.WriteString(h.Name)
		b.WriteByte('(')
		b.WriteString(strconv.FormatFloat(h.Distance, 'f', -1, 64))
		b.WriteByte(')')
	}

	return b.String()
}
