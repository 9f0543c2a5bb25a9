// Package matrix offers a generic row-major dense matrix whose entries are
// semiring elements, together with the generalized products that underlie
// polar computation.
//
// The matrix package provides:
//
//   - Dense[T] with bounds-checked At/Set, copying Row/Col accessors,
//     Clone and Transpose.
//   - MulVec and Mul: u[i] = ⊕_j R[i][j] ⊗ v[j], evaluated with the semiring's
//     own Add/Multiply, never with ordinary arithmetic.
//   - Map: element-wise conversion to another value domain, used to derive
//     the φ-qualifying Boolean relation of a K-valued context.
//
// Complexity:
//
//	At/Set O(1); Row O(c); Col O(r); Clone/Transpose/Map O(r*c);
//	MulVec O(r*c) semiring operations; Mul O(r*k*c).
//
// Zero-sized shapes (0×c, r×0) are legal: a context may have no objects or
// no attributes.
package matrix
