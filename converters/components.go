// SPDX-License-Identifier: MIT

package converters

import (
	"sort"

	"github.com/aclements/go-moremath/graph/graphalg"

	"github.com/katalvlaran/bestroute/core"
)

// Components returns the node names of g grouped by connected component.
// Names within a group are sorted, and groups are ordered by their first
// name.
//
// Complexity: O(V + E) for the component search, plus sorting.
func Components(g *core.Graph) [][]string {
	sccs := graphalg.SCC(g, 0)

	groups := make([][]string, sccs.NumNodes())
	for cid := range groups {
		sub := sccs.Subnodes(cid)
		names := make([]string, len(sub))
		for i, n := range sub {
			names[i] = g.Name(n)
		}
		sort.Strings(names)
		groups[cid] = names
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })

	return groups
}

// SameComponent reports whether a and b are both nodes of g and are joined
// by some sequence of links.
func SameComponent(g *core.Graph, a, b string) bool {
	ai, ok := g.Index(a)
	if !ok {
		return false
	}
	bi, ok := g.Index(b)
	if !ok {
		return false
	}
	sccs := graphalg.SCC(g, graphalg.SCCSubnodeComponent)

	return sccs.SubnodeComponent(ai) == sccs.SubnodeComponent(bi)
}
