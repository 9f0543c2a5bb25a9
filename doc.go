// Package kfca is an in-memory toolkit for formal concept analysis over
// K-valued contexts, where the incidence values live in an idempotent
// semiring instead of {0, 1}.
//
// What is in the box?
//
//	A deterministic, generic library that brings together:
//		• Semirings: Boolean, max-plus, min-plus and fuzzy (Gödel)
//		• Dense semiring matrices with generalized products
//		• K-valued formal contexts with object and attribute labels
//		• φ-Galois connections: polars, closures and concept checks
//		• Concept lattices with order, meet, join and cover queries
//		• Hasse diagrams as Graphviz DOT, SVG or PNG
//
// Everything is organized under small subpackages:
//
//	semiring/ — the algebra: ⊕, ⊗, residuation and the natural order
//	bitvec/   — immutable index sets used as extents and intents
//	matrix/   — row-major Dense[T] and MulVec/VecMul/Mul/Map
//	kcontext/ — labelled K-valued formal contexts
//	galois/   — the φ-Galois connection induced by a pivot φ
//	bfs/      — breadth-first reachability over index graphs
//	lattice/  — concurrent lattice construction and queries
//	hasse/    — DOT export and Graphviz rendering
//
// Quick example (Boolean context, pivot ⊤):
//
//	       {a,b,c} / {}
//	        /        \
//	  {a,b} / {x}   {c} / {y}
//	        \        /
//	        {} / {x,y}
//
// Build targets (tests, coverage, vet, lint) live in magefiles/.
package kfca
