// SPDX-License-Identifier: MIT

package converters

import (
	"io"

	"github.com/aclements/go-moremath/graph/graphout"

	"github.com/katalvlaran/bestroute/core"
	"github.com/katalvlaran/bestroute/dijkstra"
)

// Route highlight colour.
const routeColor = "red"

// WriteDOT writes g to w in Graphviz dot syntax. Each undirected link is
// drawn once, labelled with its distance; the mirrored half is emitted
// invisible so the layout is unaffected. Nodes and links along route are
// highlighted. route may be nil.
func WriteDOT(w io.Writer, g *core.Graph, route dijkstra.Route) error {
	onRoute := make(map[int]int, len(route)) // node index → position on route
	for pos, hop := range route {
		if i, ok := g.Index(hop.Name); ok {
			onRoute[i] = pos
		}
	}

	d := graphout.Dot{
		Name:  "bestroute",
		Label: g.Name,
		NodeAttrs: func(node int) []graphout.DotAttr {
			if _, ok := onRoute[node]; !ok {
				return nil
			}
			return []graphout.DotAttr{
				{Name: "color", Val: routeColor},
				{Name: "penwidth", Val: 2},
			}
		},
		EdgeAttrs: func(node, edge int) []graphout.DotAttr {
			c := g.Connections(node)[edge]
			if c.Mirror {
				return []graphout.DotAttr{
					{Name: "style", Val: graphout.DotLiteral("invis")},
					{Name: "constraint", Val: graphout.DotLiteral("false")},
				}
			}
			attrs := []graphout.DotAttr{
				{Name: "dir", Val: graphout.DotLiteral("none")},
				{Name: "label", Val: c.Distance},
			}
			if onRouteLink(route, onRoute, node, c) {
				attrs = append(attrs,
					graphout.DotAttr{Name: "color", Val: routeColor},
					graphout.DotAttr{Name: "penwidth", Val: 2},
				)
			}
			return attrs
		},
	}

	return d.Fprint(w, g)
}

// onRouteLink reports whether connection c from node joins two consecutive
// route hops with exactly the distance the route used between them. The sum
// is formed the same way the search formed it, so decimal weights compare
// exactly.
func onRouteLink(route dijkstra.Route, onRoute map[int]int, node int, c core.Connection) bool {
	p, ok := onRoute[node]
	if !ok {
		return false
	}
	q, ok := onRoute[c.To]
	if !ok {
		return false
	}
	if p > q {
		p, q = q, p
	}

	return q == p+1 && route[p].Distance+c.Distance == route[q].Distance
}
