// Package lattice enumerates the φ-concepts of a K-valued context and
// organizes them into a concept lattice.
//
// What
//
//   - Build computes top and bottom, closes every object and attribute
//     generator, then saturates the candidate set under pairwise meet and
//     join with a work-list until no new extent appears.
//   - Concepts are identified by extent; duplicates are discarded through a
//     persistent hash map keyed by extent.
//   - Ordering is deterministic: descending extent size, then ascending
//     lexical order of extent indices. Concept 0 is the top; the last
//     concept is the bottom.
//   - The covering relation (Hasse diagram) is the transitive reduction of
//     extent inclusion.
//
// Options
//
//   - WithMethod(MethodCanonical | MethodObjects | MethodAttributes)
//   - WithWorkers(n):      parallelism of the generator closures.
//   - WithMaxConcepts(n):  abort with ErrTooManyConcepts beyond n concepts.
//   - WithContext(ctx):    cancellation.
//   - WithLogger(l):       slog diagnostics (Debug per phase, Info per build).
//   - WithMetrics(m):      Prometheus collectors from NewMetrics.
//
// Complexity
//
//	The number of concepts k is worst-case exponential in min(n, p); this is
//	inherent to concept enumeration. The fixed point costs O(k²) closures
//	and the covering relation O(k³) subset tests, which suits contexts with
//	tens of objects and attributes.
//
// Errors
//
//   - ErrContextMismatch  connection built over another context.
//   - ErrTooManyConcepts  WithMaxConcepts exceeded.
//   - ErrBrokenInvariant  a produced pair failed the concept or lattice checks.
//   - ErrOutOfRange, ErrForeignConcept, ErrNotFound from the query surface.
//   - Wrapped semiring or galois errors, and ctx.Err().
package lattice
