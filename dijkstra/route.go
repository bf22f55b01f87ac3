// SPDX-License-Identifier: MIT

package dijkstra

// route rebuilds the path to end by following predecessors back to the
// node that has none (the start node), then reversing.
func (r *runner) route(end int) Route {
	var hops Route
	for v := end; v != noNode; v = r.via[v] {
		hops = append(hops, Hop{Name: r.names[v], Distance: r.dist[v]})
		if len(hops) > len(r.via) {
			panic("dijkstra: predecessor chain does not terminate")
		}
	}

	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	return hops
}
