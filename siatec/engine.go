package siatec

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpattern/point"
)

// Engine runs SIA/SIATEC pattern discovery. It holds only configuration,
// so one Engine may serve concurrent calls over shared read-only datasets.
type Engine struct {
	opts Options
}

// New returns an Engine configured by opts on top of DefaultOptions.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{opts: o}
}

// ComputeMTPs is shorthand for New(opts...).MTPs(d).
func ComputeMTPs(d *point.Set, opts ...Option) ([]MTP, error) {
	return New(opts...).MTPs(d)
}

// ComputeTECs is shorthand for New(opts...).TECs(d).
func ComputeTECs(d *point.Set, opts ...Option) ([]TEC, error) {
	return New(opts...).TECs(d)
}

// MTPs returns the maximal translatable pattern of every distinct non-zero
// vector between points of d, ordered by ascending vector.
// Returns ErrNilSet for a nil d; fewer than two points yield no MTPs.
// Complexity: O(d·n²) time, O(n²) memory.
func (e *Engine) MTPs(d *point.Set) ([]MTP, error) {
	if d == nil {
		return nil, ErrNilSet
	}
	if d.Len() < 2 {
		return nil, nil
	}
	vt, err := buildVectorTable(e.opts.Ctx, d, e.opts.Workers)
	if err != nil {
		return nil, err
	}

	return extractMTPs(d, vt)
}

// TECs returns one TEC per distinct pattern configuration found among the
// MTPs of d, each with its complete translator set. Patterns are compared
// in anchored form (minimal point at the origin). Every TEC is rebased onto
// its earliest occurrence, so its translators are all lexicographically
// non-negative and start with the zero vector.
// Returns ErrNilSet for a nil d; fewer than two points yield no TECs.
func (e *Engine) TECs(d *point.Set) ([]TEC, error) {
	if d == nil {
		return nil, ErrNilSet
	}
	if d.Len() < 2 {
		return nil, nil
	}
	start := time.Now()

	vt, err := buildVectorTable(e.opts.Ctx, d, e.opts.Workers)
	if err != nil {
		return nil, err
	}
	mtps, err := extractMTPs(d, vt)
	if err != nil {
		return nil, err
	}

	// Keep the first MTP of every anchored configuration.
	seen := make(map[string]struct{}, len(mtps))
	reps := make([]*point.Set, 0, len(mtps))
	for _, m := range mtps {
		key := m.Pattern.Anchored().Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		reps = append(reps, m.Pattern)
	}

	// Each task writes only its own slot.
	tecs := make([]TEC, len(reps))
	g, gctx := errgroup.WithContext(e.opts.Ctx)
	g.SetLimit(max(e.opts.Workers, 1))
	for i, p := range reps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tec, err := buildTEC(d, vt, p)
			if err != nil {
				return err
			}
			tecs[i] = tec

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.opts.Logger.Debug("siatec: discovery finished",
		slog.Int("points", d.Len()),
		slog.Int("vectors", len(vt.entries)),
		slog.Int("tecs", len(tecs)),
		slog.Int("workers", e.opts.Workers),
		slog.Duration("elapsed", time.Since(start)),
	)

	return tecs, nil
}

// extractMTPs turns every table row into its MTP, keeping vector order.
func extractMTPs(d *point.Set, vt *vectorTable) ([]MTP, error) {
	mtps := make([]MTP, len(vt.entries))
	for k, e := range vt.entries {
		p, err := d.Subset(e.sources())
		if err != nil {
			return nil, fmt.Errorf("siatec: vector %v: %w", e.vec, err)
		}
		mtps[k] = MTP{Vector: e.vec, Pattern: p}
	}

	return mtps, nil
}

// buildTEC computes every translator of pattern p (a subset of d) and
// rebases the result onto the earliest occurrence.
//
// Candidate translators are D[j] - D[i0], where D[i0] is the minimal pattern
// point. For j > i0 the candidate is a table vector and every pattern index
// must be one of its sources; for j < i0 the table holds its negation and
// every pattern index must be one of its targets. Candidates come out in
// ascending order because subtracting a fixed point preserves order.
func buildTEC(d *point.Set, vt *vectorTable, p *point.Set) (TEC, error) {
	idx := make([]int, p.Len())
	for k, q := range p.All() {
		i, ok := d.IndexOf(q)
		if !ok {
			return TEC{}, fmt.Errorf("%w: pattern point %v not in dataset", ErrInvalidTranslator, q)
		}
		idx[k] = i
	}
	i0 := idx[0]

	var valid []int
	for j := 0; j < d.Len(); j++ {
		if j == i0 || covers(vt, d, idx, i0, j) {
			valid = append(valid, j)
		}
	}

	// Rebase onto the occurrence at D[valid[0]].
	first := valid[0]
	translators := make([]point.Point, len(valid))
	for k, j := range valid {
		translators[k] = d.Difference(first, j)
	}
	pattern, err := p.Translate(d.Difference(i0, first))
	if err != nil {
		return TEC{}, err
	}

	return NewTEC(pattern, translators)
}

// covers reports whether D[j] - D[i0] maps every indexed pattern point into d.
func covers(vt *vectorTable, d *point.Set, idx []int, i0, j int) bool {
	if j > i0 {
		e := vt.lookup(d.Difference(i0, j))
		for _, i := range idx {
			if !e.hasSource(i) {
				return false
			}
		}

		return true
	}
	e := vt.lookup(d.Difference(j, i0))
	for _, i := range idx {
		if !e.hasTarget(i) {
			return false
		}
	}

	return true
}
