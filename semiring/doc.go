// Package semiring defines the idempotent-semiring contract used by K-valued
// Formal Concept Analysis and ships the standard instances.
//
// What:
//
//   - Semiring[T]: the capability set (⊕, ⊗, ε, e, residuation) over a value
//     domain T. Context, Galois connection and lattice code are generic over
//     this interface, never over a concrete numeric type.
//   - Boolean:  ({false,true}, ∨, ∧, false, true)        — classic FCA.
//   - MaxPlus:  (ℝ ∪ {±∞}, max, +, -∞, 0)                — natural order is ≤.
//   - MinPlus:  (ℝ ∪ {±∞}, min, +, +∞, 0)                — natural order is ≥.
//   - Fuzzy:    ([0,1], max, min, 0, 1) (Gödel)          — graded membership.
//   - Leq, Sum, Product, Dot: folds derived from the contract.
//
// Natural order:
//
//	a ≤ b  ⟺  a ⊕ b = b
//
// Residuation:
//
//	a\c = ⋁{ x | a ⊗ x ≤ c }   (ResiduateLeft)
//	c/b = ⋁{ x | x ⊗ b ≤ c }   (ResiduateRight)
//
// Errors:
//
//   - ErrDomain  an operand is outside the representable domain
//     (NaN for the float instances, values outside [0,1] for Fuzzy).
//
// Every operation returns an explicit error instead of panicking; values
// produced internally by the engine never trigger ErrDomain.
package semiring
