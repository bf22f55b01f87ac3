// SPDX-License-Identifier: MIT

// Package dijkstra finds the best (shortest) route between two named nodes
// of a core.Graph using Dijkstra's relaxation algorithm.
//
// Overview:
//
//   - Every node starts at distance +Inf except the start node (0) and has
//     no predecessor. All nodes start unsettled.
//   - Each round settles the unsettled node with the smallest distance.
//     Settling the end node stops the search: with non-negative weights its
//     distance can no longer improve.
//   - Otherwise each connection to a still-unsettled neighbour is relaxed:
//     a strictly smaller candidate distance replaces the neighbour's
//     distance and predecessor. Equal candidates keep the first-found
//     predecessor.
//   - The route is rebuilt by walking predecessors back from the end node.
//
// Selection strategies:
//
//   - SelectLinear (default): scan all unsettled nodes each round.
//     Time O(V² + E), Space O(V).
//   - SelectHeap: lazy decrease-key min-heap (container/heap).
//     Time O((V + E) log V), Space O(V + E).
//
// Both strategies break ties between equal distances by the lowest node
// name, so they always return the same route.
//
// Outcomes:
//
// FindBestRoute returns (route, true) on success and (nil, false) when the
// graph is nil, either endpoint is unknown, or the end node cannot be
// reached. These are ordinary outcomes, not errors.
//
// A node becoming its own predecessor can only come from a bug in the
// relaxation loop; it panics with ErrSelfPredecessor.
//
// Per-query distances and predecessors are kept in the search state, not on
// the Graph, so one Graph may serve any number of sequential or concurrent
// queries once it is fully built.
package dijkstra
