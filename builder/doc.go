// Package builder generates K-valued formal contexts: seeded random
// contexts for property tests and benchmarks, and the classic conceptual
// scales (nominal, ordinal) whose lattices are known in closed form.
//
// The package offers the following key components:
//
//   - Label schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A",…,"Z","AA",…) and SymbolNumberIDFn(prefix).
//   - Value distributions (ValueFn): ConstantValueFn, UniformValueFn and
//     LevelsValueFn (uniform over a fixed grid such as 0, 0.25, …, 1).
//   - Constructors: RandomBoolean, RandomValued, Nominal, Ordinal.
//
// Guarantees:
//
//   - Determinism: the same seed and options yield the same context.
//   - Option constructors panic on invalid parameters; constructors return
//     ErrInvalidSize for negative or too small sizes.
package builder
