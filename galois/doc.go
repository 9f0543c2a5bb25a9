// Package galois implements the φ-polar operators of a K-valued context and
// the closure operators they induce.
//
// For a context (G, M, R) over an idempotent semiring K and a pivot φ ∈ K,
// object g qualifies for attribute m iff e ≤ φ\R(g,m), which by residuation
// is φ ≤ R(g,m) under the natural order. New evaluates that predicate once
// per incidence (through ResiduateLeft and Leq, never plain arithmetic) and
// stores the result as per-object and per-attribute bit vectors.
//
//   - RightPolar(extent): attributes qualified by every object of extent.
//   - LeftPolar(intent):  objects qualifying for every attribute of intent.
//   - ExtentClosure = LeftPolar ∘ RightPolar, IntentClosure = RightPolar ∘ LeftPolar.
//
// Both closures are extensive, monotone and idempotent. The empty extent maps
// to the full attribute set and vice versa.
//
// Complexity: New is O(n*p) semiring operations; each polar is O(|x| * width/64).
//
// A Connection is immutable and safe for concurrent use.
package galois
