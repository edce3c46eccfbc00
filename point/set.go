package point

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// Set is an ordered, duplicate-free collection of points of one dimensionality.
// Members are kept in strictly ascending lexicographic order. A Set is
// read-only once built and may be shared across goroutines.
type Set struct {
	pts []Point
	dim int
}

// NewSet builds a Set from an arbitrary collection of points: it copies,
// sorts ascending and removes duplicates. The input slice is not modified.
// Returns ErrInvalidInput for a zero-dimension Point or when some dimension's
// span (max - min) overflows float64, and ErrDimensionMismatch if the points
// do not all share one dimensionality. An empty input yields an empty Set.
// A finite span keeps every difference between members finite.
// Complexity: O(d·n log n) time, O(n) memory.
func NewSet(points []Point) (*Set, error) {
	if len(points) == 0 {
		return &Set{}, nil
	}
	dim := points[0].Dim()
	for i, p := range points {
		if p.Dim() == 0 {
			return nil, fmt.Errorf("%w: point %d has no components", ErrInvalidInput, i)
		}
		if p.Dim() != dim {
			return nil, fmt.Errorf("%w: point %d has %d components, want %d",
				ErrDimensionMismatch, i, p.Dim(), dim)
		}
	}
	pts := slices.Clone(points)
	slices.SortFunc(pts, Cmp)
	pts = slices.CompactFunc(pts, Point.Equal)
	if err := checkSpan(pts, dim); err != nil {
		return nil, err
	}

	return &Set{pts: slices.Clip(pts), dim: dim}, nil
}

// checkSpan rejects point collections whose extent in some dimension is
// not representable, so Difference can never produce ±Inf.
func checkSpan(pts []Point, dim int) error {
	for k := 0; k < dim; k++ {
		lo, hi := pts[0].c[k], pts[0].c[k]
		for _, p := range pts[1:] {
			lo, hi = min(lo, p.c[k]), max(hi, p.c[k])
		}
		if math.IsInf(hi-lo, 0) {
			return fmt.Errorf("%w: dimension %d spans [%v, %v], difference overflows",
				ErrInvalidInput, k, lo, hi)
		}
	}

	return nil
}

// FromCoordinates builds a Set from raw coordinate tuples, one per event.
// Every tuple goes through New, so non-finite values yield ErrInvalidInput.
func FromCoordinates(coords [][]float64) (*Set, error) {
	pts := make([]Point, 0, len(coords))
	for i, c := range coords {
		p, err := New(c...)
		if err != nil {
			return nil, fmt.Errorf("tuple %d: %w", i, err)
		}
		pts = append(pts, p)
	}

	return NewSet(pts)
}

// fromSorted wraps points already known to be sorted, unique and uniform.
func fromSorted(pts []Point) *Set {
	if len(pts) == 0 {
		return &Set{}
	}

	return &Set{pts: pts, dim: pts[0].Dim()}
}

// Len returns the number of points.
func (s *Set) Len() int { return len(s.pts) }

// Dim returns the dimensionality of the members, or 0 for an empty set.
func (s *Set) Dim() int { return s.dim }

// At returns the i-th point in ascending order. Panics if i is out of range.
func (s *Set) At(i int) Point { return s.pts[i] }

// Points returns a copy of the members in ascending order.
func (s *Set) Points() []Point { return slices.Clone(s.pts) }

// All iterates the members in ascending order together with their index.
// The sequence is finite and may be ranged over repeatedly.
func (s *Set) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, p := range s.pts {
			if !yield(i, p) {
				return
			}
		}
	}
}

// IndexOf returns the position of p and true, or the insertion point and false.
// Complexity: O(d·log n).
func (s *Set) IndexOf(p Point) (int, bool) {
	if p.Dim() != s.dim {
		return 0, false
	}

	return slices.BinarySearchFunc(s.pts, p, Cmp)
}

// Contains reports whether p is a member. Complexity: O(d·log n).
func (s *Set) Contains(p Point) bool {
	_, ok := s.IndexOf(p)

	return ok
}

// Translate returns every member shifted by v, in the set's order.
// The result is not validated against any dataset.
// Returns ErrDimensionMismatch if v's dimensionality differs from the set's.
func (s *Set) Translate(v Point) ([]Point, error) {
	if len(s.pts) == 0 {
		return nil, nil
	}
	if v.Dim() != s.dim {
		return nil, dimError(s.dim, v.Dim())
	}
	out := make([]Point, len(s.pts))
	for i, p := range s.pts {
		out[i], _ = p.Add(v) // dims checked above
	}

	return out, nil
}

// Subset returns the members at the given indices as a new Set.
// Indices may be given in any order and may repeat.
// Returns ErrOutOfRange if any index is outside [0, Len()).
func (s *Set) Subset(indices []int) (*Set, error) {
	idx := slices.Clone(indices)
	slices.Sort(idx)
	idx = slices.Compact(idx)
	pts := make([]Point, len(idx))
	for k, i := range idx {
		if i < 0 || i >= len(s.pts) {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, len(s.pts))
		}
		pts[k] = s.pts[i]
	}

	return fromSorted(pts), nil
}

// Difference returns At(j) - At(i). Members share one dimensionality, so
// no check is needed. Panics if i or j is out of range.
func (s *Set) Difference(i, j int) Point {
	v, _ := s.pts[j].Sub(s.pts[i])

	return v
}

// Anchored returns the set translated so its minimal point is the origin.
// Two sets are translations of each other iff their anchored forms are Equal.
// Translation preserves lexicographic order, so no re-sort happens.
func (s *Set) Anchored() *Set {
	if len(s.pts) == 0 {
		return &Set{}
	}
	pts := make([]Point, len(s.pts))
	for i := range s.pts {
		pts[i] = s.Difference(0, i)
	}

	return fromSorted(pts)
}

// Equal reports whether both sets hold exactly the same points.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}

	return slices.EqualFunc(s.pts, o.pts, Point.Equal)
}

// Key returns an exact binary encoding of the set usable as a map key.
// Two sets have the same Key iff they are Equal.
func (s *Set) Key() string {
	buf := make([]byte, 0, 4+8*s.dim*len(s.pts))
	buf = binary.BigEndian.AppendUint32(buf, uint32(s.dim))
	for _, p := range s.pts {
		buf = p.appendKey(buf)
	}

	return string(buf)
}

// String renders the set as "{(x, y) (x, y) ...}".
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range s.pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
