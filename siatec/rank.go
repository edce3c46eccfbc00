package siatec

import (
	"cmp"
	"slices"
)

// RankOptions selects which TECs Rank keeps.
type RankOptions struct {
	// Limit caps the number of TECs returned. 0 or negative means no cap.
	Limit int

	// MinCompression drops TECs whose CompressionRatio is below it.
	MinCompression float64
}

// Rank returns a new slice of the TECs ordered by CompressionRatio, highest
// first, filtered and truncated per opts. Ties keep their input order.
// The input slice and its TECs are left untouched.
// Complexity: O(k log k) for k input TECs.
func Rank(tecs []TEC, opts RankOptions) []TEC {
	out := make([]TEC, 0, len(tecs))
	for _, t := range tecs {
		if t.CompressionRatio() >= opts.MinCompression {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b TEC) int {
		return cmp.Compare(b.CompressionRatio(), a.CompressionRatio())
	})
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return out
}
