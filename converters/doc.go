// SPDX-License-Identifier: MIT

// Package converters adapts core.Graph to the go-moremath graph toolkit
// (github.com/aclements/go-moremath/graph):
//
//   - WriteDOT renders a Graph, optionally with a highlighted route, as a
//     Graphviz digraph via graphout.Dot.
//   - Components groups node names by connected component via
//     graphalg.SCC. Every link is stored in both directions, so strongly
//     connected components are exactly the connected components.
package converters
