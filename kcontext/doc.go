// Package kcontext defines the K-valued formal context: an ordered list of
// object labels, an ordered list of attribute labels, and an n×p incidence
// matrix whose entries belong to one semiring.
//
// A Context is immutable once New returns. Every accessor hands out copies,
// so a single Context can be shared by any number of Galois connections and
// goroutines.
//
// Errors:
//
//   - ErrDimension       matrix shape differs from (|objects|, |attributes|), or rows are ragged.
//   - ErrDuplicateLabel  an object or attribute label repeats.
//   - ErrOutOfRange      an index accessor received a position outside the context.
//
// Incidence values are not validated here; galois.New checks them against
// the semiring domain and the pivot.
package kcontext
