// Package point provides the geometric primitives of lvpattern: an immutable
// fixed-dimension coordinate vector (Point) and an ordered, duplicate-free
// collection of such vectors (Set).
//
// What:
//
//   - Point: exact real-valued coordinates with component-wise Add/Sub,
//     lexicographic Compare (component 0 most significant), exact Equal and
//     a Hash/Key consistent with Equal.
//   - Set: a dataset or pattern. Always sorted ascending, never holds two
//     equal points, never mixes dimensionalities.
//
// Why:
//
//   - Translational pattern discovery groups difference vectors by exact
//     value, so equality must be exact (no epsilon) and hashable.
//   - Sorted storage gives O(log n) membership and a canonical iteration
//     order, which makes every algorithm built on top deterministic.
//
// Encoding:
//
//	Coordinates are compared bit-for-bit after normalising -0 to +0.
//	Callers holding fractional data (onsets in beats, rational durations)
//	should encode them upstream as exact integers or dyadic fractions.
//
// Usage:
//
//	ds, err := point.FromCoordinates([][]float64{{0, 60}, {1, 62}, {2, 64}})
//	if err != nil {
//	  // ErrInvalidInput or ErrDimensionMismatch
//	}
//	ok := ds.Contains(point.MustNew(1, 62)) // true
//
// Complexity:
//
//   - NewSet:   O(n log n) time, O(n) memory
//   - Contains: O(d·log n)
//   - Add/Sub/Compare/Equal: O(d)
//
// Errors:
//
//   - ErrInvalidInput       empty or non-finite coordinates, overflowing set span
//   - ErrDimensionMismatch  operands or set members of differing dimension
//   - ErrOutOfRange         bad index passed to Subset
package point
