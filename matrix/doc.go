// Package matrix offers dense float64 grids for relation samples and their
// reductions.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked At/Set and an explicit
//     numeric policy (NaN/Inf rejected unless WithAllowNaN is given).
//   - Validators shared by every kernel (ValidateSquare, ValidateBinary, ...).
//   - Reachability, the dense O(n³) closure of 0/1 relations, kept as the
//     test oracle for the bitset closure of package order.
//   - NaNMean and Threshold, used to turn a trace of relation samples into a
//     single averaged and binarised relation.
//
// Matrices are best for small item sets where O(n²) memory is acceptable;
// the sampler itself works on the bitset relations of package order.
package matrix
