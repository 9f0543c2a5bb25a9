// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrContextMismatch indicates that the connection was built over a
	// different context than the one passed to Build, or either is nil.
	ErrContextMismatch = errors.New("lattice: connection does not belong to context")

	// ErrTooManyConcepts indicates that enumeration exceeded WithMaxConcepts.
	ErrTooManyConcepts = errors.New("lattice: concept bound exceeded")

	// ErrBrokenInvariant indicates a builder defect: a produced pair is not
	// a concept, or the covering relation is not a bounded connected order.
	ErrBrokenInvariant = errors.New("lattice: broken invariant")

	// ErrOutOfRange indicates a concept index outside [0, ConceptCount).
	ErrOutOfRange = errors.New("lattice: concept index out of range")

	// ErrForeignConcept indicates a Concept value that was not produced by
	// this lattice.
	ErrForeignConcept = errors.New("lattice: concept not from this lattice")

	// ErrNotFound indicates a meet or join that is not materialized, which
	// only happens for lattices built with MethodObjects or MethodAttributes.
	ErrNotFound = errors.New("lattice: concept not materialized")
)
