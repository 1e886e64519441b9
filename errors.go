package rface

import "errors"

// Sentinel errors for PreconditionViolation: programmer errors the core
// refuses to paper over. Callers should treat any of these as fatal — check
// with errors.Is, then stop, rather than retry.
var (
	ErrSampleFractionInvalid = errors.New("sampleFraction must be > 0, and <= 1 without replacement")
	ErrColumnLengthMismatch  = errors.New("replacement column length does not match sample count")
	ErrDuplicateColumnName   = errors.New("duplicate column name")
	ErrUnknownColumnName     = errors.New("unknown column name")
	ErrEmptyAccumulator      = errors.New("cannot decrement an empty accumulator")
	ErrUnknownCategoryCode   = errors.New("category code has no label")
	ErrInvalidMinSamples     = errors.New("minSamples must be >= 1")
	ErrInvalidHeader         = errors.New("feature header missing N:/C:/B: prefix")
	ErrRowLengthMismatch     = errors.New("matrix row has an inconsistent number of columns")
	ErrFeatureKindMismatch   = errors.New("feature column kind does not match split operation")
)
