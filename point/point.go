package point

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is an immutable coordinate vector of fixed dimensionality.
// The zero value has no components and is rejected by every Set.
type Point struct {
	c []float64
}

// New builds a Point from the given components.
// Returns ErrInvalidInput if no components are given or any component is NaN or ±Inf.
// Negative zero is stored as +0 so that Equal, Hash and Key agree.
// Complexity: O(d).
func New(components ...float64) (Point, error) {
	if len(components) == 0 {
		return Point{}, fmt.Errorf("%w: no components", ErrInvalidInput)
	}
	c := make([]float64, len(components))
	for k, x := range components {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Point{}, fmt.Errorf("%w: component %d is %v", ErrInvalidInput, k, x)
		}
		if x == 0 {
			x = 0 // drops the sign of -0
		}
		c[k] = x
	}

	return Point{c: c}, nil
}

// MustNew is like New but panics on invalid input.
// Intended for fixtures and literals known to be valid.
func MustNew(components ...float64) Point {
	p, err := New(components...)
	if err != nil {
		panic(err)
	}

	return p
}

// Zero returns the origin of the given dimensionality.
// Panics if dim < 1.
func Zero(dim int) Point {
	if dim < 1 {
		panic("point: Zero: dim must be >= 1")
	}

	return Point{c: make([]float64, dim)}
}

// Dim returns the number of components.
func (p Point) Dim() int { return len(p.c) }

// At returns component k. Panics if k is out of range, like slice indexing.
func (p Point) At(k int) float64 { return p.c[k] }

// Components returns a copy of the coordinates.
func (p Point) Components() []float64 {
	out := make([]float64, len(p.c))
	copy(out, p.c)

	return out
}

// IsZero reports whether every component is zero.
func (p Point) IsZero() bool {
	for _, x := range p.c {
		if x != 0 {
			return false
		}
	}

	return len(p.c) > 0
}

// Add returns p + o component-wise.
// Returns ErrDimensionMismatch if dimensionalities differ.
func (p Point) Add(o Point) (Point, error) {
	if len(p.c) != len(o.c) {
		return Point{}, dimError(len(p.c), len(o.c))
	}

	return Point{c: floats.AddTo(make([]float64, len(p.c)), p.c, o.c)}, nil
}

// Sub returns p - o component-wise.
// Returns ErrDimensionMismatch if dimensionalities differ.
func (p Point) Sub(o Point) (Point, error) {
	if len(p.c) != len(o.c) {
		return Point{}, dimError(len(p.c), len(o.c))
	}

	return Point{c: floats.SubTo(make([]float64, len(p.c)), p.c, o.c)}, nil
}

// Compare orders p and o lexicographically, component 0 most significant.
// Returns -1, 0 or +1; ErrDimensionMismatch if dimensionalities differ.
func (p Point) Compare(o Point) (int, error) {
	if len(p.c) != len(o.c) {
		return 0, dimError(len(p.c), len(o.c))
	}

	return Cmp(p, o), nil
}

// Equal reports exact component-wise equality.
// Points of differing dimensionality are never equal.
func (p Point) Equal(o Point) bool {
	return floats.Equal(p.c, o.c)
}

// Key returns an exact binary encoding of p usable as a map key.
// Two points have the same Key iff they are Equal.
func (p Point) Key() string {
	return string(p.appendKey(make([]byte, 0, 8*len(p.c))))
}

// appendKey writes the big-endian IEEE-754 bits of each component to buf.
func (p Point) appendKey(buf []byte) []byte {
	for _, x := range p.c {
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(x))
	}

	return buf
}

// Hash returns the 64-bit FNV-1a digest of Key. Equal points hash equally.
func (p Point) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(p.appendKey(make([]byte, 0, 8*len(p.c))))

	return h.Sum64()
}

// String renders p as "(c0, c1, ...)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for k, x := range p.c {
		if k > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Cmp is a total order over all points, suitable for slices.SortFunc.
// For points of equal dimensionality it matches Compare; otherwise the
// common prefix decides and the shorter point sorts first on a tie.
func Cmp(a, b Point) int {
	n := min(len(a.c), len(b.c))
	for k := 0; k < n; k++ {
		if c := cmp.Compare(a.c[k], b.c[k]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.c), len(b.c))
}

func dimError(a, b int) error {
	return fmt.Errorf("%w: %d vs %d components", ErrDimensionMismatch, a, b)
}
