// SPDX-License-Identifier: MIT

// Package mapfile reads the plain-text map format into a core.Graph.
//
// Format: one undirected link per line, three comma-separated fields
//
//	start_name,end_name,distance
//
// distance is a base-10 number, possibly with a decimal part, and must be
// finite and non-negative. There is no header row and no escaping, so names
// cannot contain commas. Names are taken verbatim; only the line ending
// (and trailing whitespace) is stripped. A single trailing newline at the
// end of the file is fine.
//
// Any malformed line (wrong field count, bad number, negative distance)
// fails the whole import with a *ParseError that carries the 1-based line
// number; no partial Graph is ever returned.
package mapfile
