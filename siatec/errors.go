package siatec

import "errors"

var (
	// ErrNilSet is returned when a nil *point.Set is passed to the engine.
	ErrNilSet = errors.New("siatec: point set is nil")

	// ErrInvalidTEC indicates a TEC with an empty pattern, no translators,
	// or a translator set lacking the zero vector.
	ErrInvalidTEC = errors.New("siatec: invalid translational equivalence class")

	// ErrInvalidTranslator indicates that a translator maps some pattern
	// point outside the dataset it is verified against.
	ErrInvalidTranslator = errors.New("siatec: translator maps pattern outside dataset")
)
