// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/bestroute/core"
)

// noNode marks "no predecessor" and "nothing selected".
const noNode = -1

// FindBestRoute computes the shortest route from start to end in g.
//
// Returns:
//
//   - route, true: the hops from start to end with cumulative distances.
//     If start == end the route is the single hop {start, 0}.
//   - nil, false: g is nil, start or end is not a node of g, or end lies in
//     a different connected component than start.
//
// Complexity:
//
//   - SelectLinear: Time O(V² + E), Space O(V).
//   - SelectHeap:   Time O((V + E) log V), Space O(V + E).
func FindBestRoute(g *core.Graph, start, end string, opts ...Option) (Route, bool) {
	// 1) Resolve endpoints. Unknown names are an ordinary "not found".
	if g == nil {
		return nil, false
	}
	s, ok := g.Index(start)
	if !ok {
		return nil, false
	}
	e, ok := g.Index(end)
	if !ok {
		return nil, false
	}

	// 2) Search until end is settled or nothing reachable is left.
	r := newRunner(g, s, buildOptions(opts))
	if !r.run(e) {
		return nil, false
	}

	// 3) Walk predecessors back from end.
	return r.route(e), true
}

// ShortestDistances settles every node reachable from start and returns the
// shortest distance to each node of g. Unreachable nodes map to +Inf.
//
// Errors:
//
//   - ErrNilGraph if g is nil.
//   - ErrStartNotFound if start is not a node of g.
func ShortestDistances(g *core.Graph, start string, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	r := newRunner(g, s, buildOptions(opts))
	r.run(noNode)

	dist := make(map[string]float64, len(r.dist))
	for i, d := range r.dist {
		dist[r.names[i]] = d
	}

	return dist, nil
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// runner holds the mutable state of a single search. Slices are indexed by
// core.Graph node index.
type runner struct {
	g       *core.Graph
	options Options
	names   []string  // node names, for tie-breaks and output
	dist    []float64 // best known distance from the start node
	via     []int     // predecessor on the best known route, or noNode
	settled []bool    // distance is final
	pq      nodePQ    // used by SelectHeap only
}

func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.NumNodes()
	r := &runner{
		g:       g,
		options: cfg,
		names:   make([]string, n),
		dist:    make([]float64, n),
		via:     make([]int, n),
		settled: make([]bool, n),
	}
	r.init(source)

	return r
}

// init sets every distance to +Inf except source, clears predecessors, and
// seeds the heap when SelectHeap is in use.
func (r *runner) init(source int) {
	for i := range r.dist {
		r.names[i] = r.g.Name(i)
		r.dist[i] = math.Inf(1)
		r.via[i] = noNode
	}
	r.dist[source] = 0

	if r.options.Selector == SelectHeap {
		r.pq = make(nodePQ, 0, len(r.dist))
		heap.Init(&r.pq)
		heap.Push(&r.pq, &nodeItem{id: source, name: r.names[source], dist: 0})
	}
}

// run settles nodes in order of increasing distance. It returns true once
// target is settled, and false when no reachable unsettled node remains.
// Passing noNode as target settles the whole reachable component.
func (r *runner) run(target int) bool {
	for {
		u, ok := r.next()
		if !ok {
			return false
		}
		r.settled[u] = true
		if u == target {
			return true
		}
		r.relax(u)
	}
}

// next returns the unsettled node with the smallest finite distance.
func (r *runner) next() (int, bool) {
	if r.options.Selector == SelectHeap {
		return r.nextHeap()
	}

	return r.nextLinear()
}

// nextLinear scans all unsettled nodes. O(V).
func (r *runner) nextLinear() (int, bool) {
	best := noNode
	for i := range r.dist {
		if r.settled[i] {
			continue
		}
		if best == noNode || r.less(i, best) {
			best = i
		}
	}
	// Only +Inf nodes left: they are not reachable from the start node.
	if best == noNode || math.IsInf(r.dist[best], 1) {
		return noNode, false
	}

	return best, true
}

// nextHeap pops until it finds an entry for an unsettled node. Entries for
// settled nodes are stale leftovers of the lazy decrease-key.
func (r *runner) nextHeap() (int, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.id] {
			continue
		}

		return item.id, true
	}

	return noNode, false
}

// less orders nodes by distance, then by name.
func (r *runner) less(i, j int) bool {
	if r.dist[i] != r.dist[j] {
		return r.dist[i] < r.dist[j]
	}

	return r.names[i] < r.names[j]
}

// relax tries to improve every unsettled neighbour of u through u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	for _, c := range r.g.Connections(u) {
		v := c.To
		if r.settled[v] {
			continue
		}

		// Strict "<": an equally short alternative keeps the first predecessor.
		candidate := r.dist[u] + c.Distance
		if candidate >= r.dist[v] {
			continue
		}
		r.dist[v] = candidate
		r.setVia(v, u)

		if r.options.Selector == SelectHeap {
			heap.Push(&r.pq, &nodeItem{id: v, name: r.names[v], dist: candidate})
		}
	}
}

// setVia records via as the predecessor of node. A node can never be its
// own predecessor; reaching that state is a bug, so it panics.
func (r *runner) setVia(node, via int) {
	if node == via {
		panic(fmt.Errorf("%w: %q", ErrSelfPredecessor, r.names[node]))
	}
	r.via[node] = via
}

// nodeItem is a heap entry: a node and the distance it had when pushed.
type nodeItem struct {
	id   int
	name string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then name.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].name < pq[j].name
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
