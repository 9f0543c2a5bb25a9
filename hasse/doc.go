// Package hasse exports the covering relation of a concept lattice as a
// Graphviz digraph and optionally renders it.
//
// Each node is labeled "index\n(objects)\n[attributes]"; each edge points
// from a concept to one of its upper neighbors, and rankdir=BT puts the top
// concept at the top of the drawing. The package writes only to the
// io.Writer it is given.
package hasse
