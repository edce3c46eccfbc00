package siatec

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/point"
)

// TEC is a translational equivalence class: a pattern together with every
// vector under which it recurs. The zero vector is always a translator.
// A TEC is immutable; its sets may be shared freely.
type TEC struct {
	pattern     *point.Set
	translators *point.Set
}

// MTP is the maximal translatable pattern for one non-zero vector: every
// dataset point p such that p+Vector is also in the dataset.
type MTP struct {
	Vector  point.Point
	Pattern *point.Set
}

// NewTEC builds a TEC from a pattern and its translators. Both are
// normalised into sets, so order and duplicates do not matter.
// Returns ErrInvalidTEC if the pattern is empty or the translators do not
// include the zero vector, and point.ErrDimensionMismatch if the two
// collections differ in dimensionality.
// NewTEC does not check translators against a dataset; see Verify.
func NewTEC(pattern, translators []point.Point) (TEC, error) {
	p, err := point.NewSet(pattern)
	if err != nil {
		return TEC{}, fmt.Errorf("siatec: pattern: %w", err)
	}
	t, err := point.NewSet(translators)
	if err != nil {
		return TEC{}, fmt.Errorf("siatec: translators: %w", err)
	}
	if p.Len() == 0 {
		return TEC{}, fmt.Errorf("%w: empty pattern", ErrInvalidTEC)
	}
	if t.Dim() != 0 && t.Dim() != p.Dim() {
		return TEC{}, fmt.Errorf("siatec: translators have %d components, pattern %d: %w",
			t.Dim(), p.Dim(), point.ErrDimensionMismatch)
	}
	if !t.Contains(point.Zero(p.Dim())) {
		return TEC{}, fmt.Errorf("%w: zero vector missing from translators", ErrInvalidTEC)
	}

	return TEC{pattern: p, translators: t}, nil
}

// Pattern returns the pattern points in ascending order.
func (t TEC) Pattern() *point.Set { return t.pattern }

// Translators returns the translator vectors in ascending order.
func (t TEC) Translators() *point.Set { return t.translators }

// CompressionRatio returns |P|·|T| / (|P|+|T|): the number of dataset points
// the TEC accounts for relative to the size of its description.
func (t TEC) CompressionRatio() float64 {
	p, n := float64(t.pattern.Len()), float64(t.translators.Len())

	return p * n / (p + n)
}

// Occurrences returns the pattern translated by each translator, in
// ascending translator order. The first occurrence is the pattern itself
// for TECs produced by the engine.
func (t TEC) Occurrences() [][]point.Point {
	out := make([][]point.Point, 0, t.translators.Len())
	for _, v := range t.translators.All() {
		occ, _ := t.pattern.Translate(v) // dims validated at construction
		out = append(out, occ)
	}

	return out
}

// Covered returns the union of all occurrences: the dataset points this
// TEC accounts for when verified against that dataset.
func (t TEC) Covered() *point.Set {
	var all []point.Point
	for _, occ := range t.Occurrences() {
		all = append(all, occ...)
	}
	s, _ := point.NewSet(all) // uniform, finite-by-construction dims

	return s
}

// Verify checks that p+v lies in d for every pattern point p and translator v.
// Returns ErrInvalidTranslator naming the first violation.
func (t TEC) Verify(d *point.Set) error {
	if d == nil {
		return ErrNilSet
	}
	for _, v := range t.translators.All() {
		for _, p := range t.pattern.All() {
			q, err := p.Add(v)
			if err != nil {
				return err
			}
			if !d.Contains(q) {
				return fmt.Errorf("%w: %v + %v = %v", ErrInvalidTranslator, p, v, q)
			}
		}
	}

	return nil
}

// Equal reports whether both TECs hold the same pattern and translator sets.
func (t TEC) Equal(o TEC) bool {
	return t.pattern.Equal(o.pattern) && t.translators.Equal(o.translators)
}

// String renders the TEC as "TEC(pattern={...}, translators={...})".
func (t TEC) String() string {
	return fmt.Sprintf("TEC(pattern=%v, translators=%v)", t.pattern, t.translators)
}
