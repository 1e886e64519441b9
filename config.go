package rface

import "strings"

// DatasetConfig controls how NewDataset interprets a raw string matrix.
type DatasetConfig struct {
	// Seed for the Dataset's RNG, consumed by Bootstrap and the contrast
	// permutation drawn once at construction. A negative Seed asks for a
	// wall-clock-derived seed instead of a fixed, reproducible one.
	Seed int64

	// MissingSpellings lists the case-folded strings that decode to the
	// Missing sentinel at load time. Defaults to
	// {"", "NA", "NAN", "N/A", "NULL", "?", "#N/A"} when nil.
	MissingSpellings []string

	// StrictHeaders rejects header prefixes outside {N:, C:, B:} instead
	// of silently treating them as categorical.
	StrictHeaders bool
}

// DefaultConfig returns a DatasetConfig with a fixed seed (reproducible
// runs), the standard missing-value spelling set, and lenient header
// classification.
func DefaultConfig() DatasetConfig {
	return DatasetConfig{
		Seed:             0,
		MissingSpellings: defaultMissingSpellings,
		StrictHeaders:    false,
	}
}

var defaultMissingSpellings = []string{"", "NA", "NAN", "N/A", "NULL", "?", "#N/A"}

func (c DatasetConfig) validate() error {
	return nil
}

func (c DatasetConfig) missingSet() map[string]struct{} {
	spellings := c.MissingSpellings
	if spellings == nil {
		spellings = defaultMissingSpellings
	}
	set := make(map[string]struct{}, len(spellings))
	for _, s := range spellings {
		set[strings.ToUpper(s)] = struct{}{}
	}
	return set
}

