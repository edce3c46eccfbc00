// Package lvpattern is an in-memory toolkit for discovering repeated
// structure in symbolic point datasets: musical note events mapped to
// (onset, pitch, ...) coordinates, or any other exact multi-dimensional
// encoding.
//
// 🚀 What is lvpattern?
//
//	A pure-Go, deterministic implementation of the SIA/SIATEC family:
//		• Points & point sets: exact, hashable, lexicographically ordered
//		• MTPs: the maximal pattern translatable by each difference vector
//		• TECs: every distinct pattern together with all vectors that copy it
//		• Ranking: order TECs by compression ratio and keep the best
//
// ✨ Why choose lvpattern?
//
//   - Exact – no epsilons; equal coordinates group equally, always
//   - Deterministic – the output depends only on point values, never on
//     input order or worker count
//   - Parallel when asked – sharded vector table and translator workers
//     behind a single WithWorkers option
//
// Under the hood, everything is organized under two subpackages:
//
//	point/  — Point and Set primitives, sentinel errors
//	siatec/ — vector table, MTP and TEC discovery, ranking
//
// Quick example (unit square repeated at offset (5,5)):
//
//	  ┌─┐       ┌─┐
//	  └─┘  ───▶ └─┘
//	(0,0)     (5,5)
//
// yields, among others, the TEC pattern={(0,0) (0,1) (1,0) (1,1)},
// translators={(0,0) (5,5)}.
//
//	go get github.com/katalvlaran/lvpattern
package lvpattern
