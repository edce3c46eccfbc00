package siatec

import (
	"context"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpattern/point"
)

// pair records D[src] + vec == D[dst], src < dst.
type pair struct {
	src, dst int
}

// vectorEntry is one row of the vector table.
// pairs are ascending by src; dsts holds the same targets sorted ascending.
type vectorEntry struct {
	vec   point.Point
	pairs []pair
	dsts  []int
}

// hasSource reports whether i is a source index of the entry.
func (e *vectorEntry) hasSource(i int) bool {
	k := sort.Search(len(e.pairs), func(k int) bool { return e.pairs[k].src >= i })

	return k < len(e.pairs) && e.pairs[k].src == i
}

// hasTarget reports whether i is a target index of the entry.
func (e *vectorEntry) hasTarget(i int) bool {
	_, ok := slices.BinarySearch(e.dsts, i)

	return ok
}

// sources returns the source indices in ascending order.
func (e *vectorEntry) sources() []int {
	out := make([]int, len(e.pairs))
	for k, p := range e.pairs {
		out[k] = p.src
	}

	return out
}

// vectorTable groups every ordered point pair by its difference vector.
// entries are ascending by vector; byKey indexes them by point.Key.
type vectorTable struct {
	entries []*vectorEntry
	byKey   map[string]*vectorEntry
}

// lookup returns the entry for v, or nil if no pair produces v.
func (vt *vectorTable) lookup(v point.Point) *vectorEntry {
	return vt.byKey[v.Key()]
}

// buildVectorTable computes D[j]-D[i] for all i < j and groups the pairs by
// exact vector value. Source indices are split into contiguous shards of
// roughly equal pair count; each shard fills a private map and the maps are
// merged in shard order, so pairs stay ascending by source.
func buildVectorTable(ctx context.Context, d *point.Set, workers int) (*vectorTable, error) {
	bounds := shardBounds(d.Len(), workers)
	partial := make([]map[string]*vectorEntry, len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for s, b := range bounds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[s] = fillShard(d, b[0], b[1])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	vt := &vectorTable{byKey: make(map[string]*vectorEntry)}
	for _, local := range partial {
		for key, e := range local {
			if into, ok := vt.byKey[key]; ok {
				into.pairs = append(into.pairs, e.pairs...)
				continue
			}
			vt.byKey[key] = e
			vt.entries = append(vt.entries, e)
		}
	}
	for _, e := range vt.entries {
		e.dsts = make([]int, len(e.pairs))
		for k, p := range e.pairs {
			e.dsts[k] = p.dst
		}
		slices.Sort(e.dsts)
	}
	slices.SortFunc(vt.entries, func(a, b *vectorEntry) int { return point.Cmp(a.vec, b.vec) })

	return vt, nil
}

// fillShard groups the pairs whose source lies in [lo, hi).
func fillShard(d *point.Set, lo, hi int) map[string]*vectorEntry {
	n := d.Len()
	local := make(map[string]*vectorEntry)
	for i := lo; i < hi; i++ {
		for j := i + 1; j < n; j++ {
			v := d.Difference(i, j)
			key := v.Key()
			e, ok := local[key]
			if !ok {
				e = &vectorEntry{vec: v}
				local[key] = e
			}
			e.pairs = append(e.pairs, pair{src: i, dst: j})
		}
	}

	return local
}

// shardBounds splits source indices [0, n-1) into at most shards contiguous
// ranges carrying roughly n(n-1)/2/shards pairs each. Source i owns n-1-i pairs.
func shardBounds(n, shards int) [][2]int {
	if n < 2 {
		return nil
	}
	shards = max(1, min(shards, n-1))
	total := n * (n - 1) / 2
	bounds := make([][2]int, 0, shards)
	lo, acc := 0, 0
	for i := 0; i < n-1; i++ {
		acc += n - 1 - i
		if len(bounds) < shards-1 && acc*shards >= total*(len(bounds)+1) {
			bounds = append(bounds, [2]int{lo, i + 1})
			lo = i + 1
		}
	}

	return append(bounds, [2]int{lo, n - 1})
}
