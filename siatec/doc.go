// Package siatec discovers every maximal translatable pattern in a point
// dataset and groups them into translational equivalence classes (TECs).
//
// What:
//
//   - MTPs (SIA): for each non-zero difference vector v between dataset
//     points, the set of points p with p+v also in the dataset.
//   - TECs (SIATEC): each distinct MTP configuration, up to translation,
//     paired with every vector that maps it entirely into the dataset.
//   - Rank: order TECs by compression ratio |P|·|T| / (|P|+|T|) and keep
//     the best ones.
//
// Why:
//
//   - Repeated motifs in symbolic music (onset, pitch, ...) appear as
//     translated copies of one point configuration; SIATEC finds them all
//     without a notion of "motif length" or similarity threshold.
//
// Algorithm Outline:
//  1. For every ordered pair (i, j), i < j, of the sorted dataset D compute
//     v = D[j] − D[i] and group the pairs by exact value of v.
//  2. Scan the distinct vectors in ascending order; the sources of v form
//     the MTP for v.
//  3. Anchor each MTP so its minimal point is the origin and keep the first
//     MTP per anchored form.
//  4. For each kept MTP compute all translators using the vector table,
//     then rebase the TEC onto its lexicographically earliest occurrence so
//     the zero vector is the smallest translator.
//
// Determinism:
//
//	Output depends only on the point values in D. TECs are listed in order
//	of the first vector (ascending) whose MTP produced their configuration.
//	Running with several workers produces the identical list.
//
// Trivial datasets:
//
//	A dataset with fewer than two points yields an empty list. With two or
//	more points every single point repeats under some vector, so the list
//	is never empty. The whole dataset paired with only the zero translator
//	is never emitted; {(0,0), (5,5)} yields {(0,0)} under {(0,0), (5,5)}.
//
// Complexity:
//
//   - Vector table:  O(d·n² + V log V) time, O(n²) memory (V distinct vectors)
//   - Translators:   O(n·m·log n) per distinct pattern of size m
//
// Errors:
//
//   - ErrNilSet             nil dataset
//   - ErrInvalidTEC         NewTEC with empty pattern or missing zero translator
//   - ErrInvalidTranslator  TEC.Verify found p+t outside the dataset
//   - context errors        caller context cancelled between work units
package siatec
