// SPDX-License-Identifier: MIT

package core

import "github.com/aclements/go-moremath/graph"

// Graph is consumed directly by go-moremath's graphalg and graphout packages.
var _ graph.Weighted = (*Graph)(nil)
