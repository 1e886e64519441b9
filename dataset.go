package rface

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation describes how a raw 2-D string matrix is laid out.
type Orientation int

const (
	// RowMajor means raw[sample][feature].
	RowMajor Orientation = iota
	// ColumnMajor means raw[feature][sample].
	ColumnMajor
)

// Dataset is an ordered collection of FeatureColumns plus their contrast
// shadows, sample identifiers, and a name->index lookup. Columns
// [0, NFeatures) are user columns; [NFeatures, 2*NFeatures) are their
// "_CONTRAST" shuffled shadows, one per user column in the same order.
type Dataset struct {
	samples   []string
	columns   []*FeatureColumn
	nameIndex map[string]int
	cfg       DatasetConfig
	rng       *rng
}

// NewDataset builds a Dataset from a raw string matrix. names and kinds
// describe the F user columns (not the contrasts, which NewDataset
// materializes itself); sampleIDs has length N. Missing-value spellings and
// the RNG seed come from cfg.
func NewDataset(raw [][]string, orientation Orientation, names []string, kinds []Kind, sampleIDs []string, cfg DatasetConfig) (*Dataset, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(names) != len(kinds) {
		return nil, fmt.Errorf("%w: %d names vs %d kinds", ErrColumnLengthMismatch, len(names), len(kinds))
	}

	columnsRaw, err := normalizeOrientation(raw, orientation, len(names), len(sampleIDs))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty column name", ErrDuplicateColumnName)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumnName, name)
		}
		seen[name] = struct{}{}
	}

	missing := cfg.missingSet()
	isMissingVal := func(s string) bool {
		_, ok := missing[strings.ToUpper(strings.TrimSpace(s))]
		return ok
	}

	userColumns := make([]*FeatureColumn, len(names))
	for i, name := range names {
		switch kinds[i] {
		case Numerical:
			values := make([]float64, len(columnsRaw[i]))
			for s, raw := range columnsRaw[i] {
				if isMissingVal(raw) {
					values[s] = Missing
					continue
				}
				v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
				if err != nil {
					return nil, fmt.Errorf("column %s row %d: %w", name, s, err)
				}
				values[s] = v
			}
			userColumns[i] = newNumericalColumn(name, values)
		case Categorical:
			userColumns[i] = newCategoricalColumn(name, columnsRaw[i], isMissingVal)
		default:
			return nil, fmt.Errorf("column %s: unknown kind", name)
		}
	}

	r := newRNG(cfg.Seed)
	contrastColumns := make([]*FeatureColumn, len(userColumns))
	for i, c := range userColumns {
		contrastColumns[i] = c.shuffledCopy(r)
	}

	ds := &Dataset{
		samples: append([]string(nil), sampleIDs...),
		columns: append(append([]*FeatureColumn(nil), userColumns...), contrastColumns...),
		cfg:     cfg,
		rng:     r,
	}
	ds.rebuildNameIndex()
	return ds, nil
}

// normalizeOrientation returns per-feature slices of raw string values
// (columnsRaw[f][s]), regardless of whether raw was laid out row- or
// column-major, validating that every row has a consistent length.
func normalizeOrientation(raw [][]string, orientation Orientation, nFeatures, nSamples int) ([][]string, error) {
	switch orientation {
	case ColumnMajor:
		if len(raw) != nFeatures {
			return nil, fmt.Errorf("%w: %d feature rows, expected %d", ErrRowLengthMismatch, len(raw), nFeatures)
		}
		for i, row := range raw {
			if len(row) != nSamples {
				return nil, fmt.Errorf("%w: feature %d has %d samples, expected %d", ErrRowLengthMismatch, i, len(row), nSamples)
			}
		}
		return raw, nil
	default: // RowMajor
		if len(raw) != nSamples {
			return nil, fmt.Errorf("%w: %d rows, expected %d samples", ErrRowLengthMismatch, len(raw), nSamples)
		}
		columnsRaw := make([][]string, nFeatures)
		for f := range columnsRaw {
			columnsRaw[f] = make([]string, nSamples)
		}
		for s, row := range raw {
			if len(row) != nFeatures {
				return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRowLengthMismatch, s, len(row), nFeatures)
			}
			for f, v := range row {
				columnsRaw[f][s] = v
			}
		}
		return columnsRaw, nil
	}
}

func (d *Dataset) rebuildNameIndex() {
	d.nameIndex = make(map[string]int, len(d.columns))
	for i, c := range d.columns {
		d.nameIndex[c.name] = i
	}
}

// NFeatures returns F, the number of user columns (half of the total,
// excluding contrasts).
func (d *Dataset) NFeatures() int { return len(d.columns) / 2 }

// NSamples returns N, the number of samples.
func (d *Dataset) NSamples() int { return len(d.samples) }

// IsNumerical reports whether column i is Numerical.
func (d *Dataset) IsNumerical(i int) bool { return d.columns[i].kind == Numerical }

// NRealSamples counts the non-Missing entries in column i.
func (d *Dataset) NRealSamples(i int) int { return d.columns[i].NRealSamples() }

// NRealSamplesPair counts rows where both column i and column j are
// non-Missing.
func (d *Dataset) NRealSamplesPair(i, j int) int {
	ci, cj := d.columns[i], d.columns[j]
	n := 0
	for s := range ci.values {
		if !isMissing(ci.values[s]) && !isMissing(cj.values[s]) {
			n++
		}
	}
	return n
}

// NCategories returns the number of distinct categories in column i, or 0
// for a Numerical column.
func (d *Dataset) NCategories(i int) int { return d.columns[i].NCategories() }

// Categories returns the ordered category labels for column i.
func (d *Dataset) Categories(i int) []string { return d.columns[i].Categories() }

// RawValue renders row s of column i as a string.
func (d *Dataset) RawValue(i, s int) (string, error) { return d.columns[i].RawValue(s) }

// IndexOf resolves a column name to its position, or ErrUnknownColumnName.
func (d *Dataset) IndexOf(name string) (int, error) {
	i, ok := d.nameIndex[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumnName, name)
	}
	return i, nil
}

// Column exposes the underlying FeatureColumn at index i, for callers that
// need direct access (e.g. the split finder).
func (d *Dataset) Column(i int) *FeatureColumn { return d.columns[i] }

// ReplaceColumnNumerical replaces column i's values wholesale, converting it
// to Numerical. Length must match NSamples.
func (d *Dataset) ReplaceColumnNumerical(i int, values []float64) error {
	return d.columns[i].replaceNumerical(values)
}

// ReplaceColumnRaw replaces column i's values wholesale from raw string
// labels, converting it to Categorical. Length must match NSamples.
func (d *Dataset) ReplaceColumnRaw(i int, raw []string) error {
	missing := d.cfg.missingSet()
	isMissingVal := func(s string) bool {
		_, ok := missing[strings.ToUpper(strings.TrimSpace(s))]
		return ok
	}
	return d.columns[i].replaceRaw(raw, isMissingVal)
}

// Whitelist rebuilds the Dataset to keep only the named user columns, each
// still followed by its paired contrast column.
func (d *Dataset) Whitelist(names []string) error {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, err := d.IndexOf(n); err != nil {
			return err
		}
		keep[n] = struct{}{}
	}
	return d.rebuildKeeping(func(name string) bool {
		_, ok := keep[name]
		return ok
	})
}

// Blacklist rebuilds the Dataset to drop the named user columns, keeping
// every other user column (and its paired contrast).
func (d *Dataset) Blacklist(names []string) error {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, err := d.IndexOf(n); err != nil {
			return err
		}
		drop[n] = struct{}{}
	}
	return d.rebuildKeeping(func(name string) bool {
		_, ok := drop[name]
		return !ok
	})
}

func (d *Dataset) rebuildKeeping(keep func(name string) bool) error {
	f := d.NFeatures()
	var newUsers, newContrasts []*FeatureColumn
	for i := 0; i < f; i++ {
		user := d.columns[i]
		if !keep(user.name) {
			continue
		}
		newUsers = append(newUsers, user)
		newContrasts = append(newContrasts, d.columns[f+i])
	}
	d.columns = append(newUsers, newContrasts...)
	d.rebuildNameIndex()
	return nil
}

// PermuteContrasts reshuffles every contrast column in place with a fresh
// Fisher-Yates draw from the Dataset's RNG.
func (d *Dataset) PermuteContrasts() {
	f := d.NFeatures()
	for i := f; i < 2*f; i++ {
		fisherYatesShuffle(d.columns[i].values, d.rng)
	}
}

// filteredPair returns, for rows in candidates where both target and
// feature columns are non-Missing, the parallel value slices and the
// original sample indices they came from.
func (d *Dataset) filteredPair(target, feature int, candidates []int) (tv, fv []float64, orig []int) {
	ct, cf := d.columns[target], d.columns[feature]
	orig = make([]int, 0, len(candidates))
	tv = make([]float64, 0, len(candidates))
	fv = make([]float64, 0, len(candidates))
	for _, s := range candidates {
		t, f := ct.values[s], cf.values[s]
		if isMissing(t) || isMissing(f) {
			continue
		}
		tv = append(tv, t)
		fv = append(fv, f)
		orig = append(orig, s)
	}
	return tv, fv, orig
}
