package rface

import "strings"

// ClassifyHeader infers a feature's Kind from an AFM-style column header:
// "N:" denotes Numerical, "C:" and "B:" denote Categorical (grounded in the
// CloudForest AFM convention, which this matrix format descends from). When
// cfg.StrictHeaders is false, any other prefix (or none) is treated as
// Categorical, matching CloudForest's lenient default. When true, an
// unrecognized prefix is rejected with ErrInvalidHeader.
func ClassifyHeader(header string, cfg DatasetConfig) (Kind, error) {
	switch {
	case strings.HasPrefix(header, "N:"):
		return Numerical, nil
	case strings.HasPrefix(header, "C:"), strings.HasPrefix(header, "B:"):
		return Categorical, nil
	default:
		if cfg.StrictHeaders {
			return Categorical, ErrInvalidHeader
		}
		return Categorical, nil
	}
}
