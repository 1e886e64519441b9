package rface

import "strconv"

// Kind distinguishes how a FeatureColumn's values are interpreted.
type Kind int

const (
	// Numerical columns hold raw real-valued measurements.
	Numerical Kind = iota
	// Categorical columns hold integer codes in [0, C) mapped to string labels.
	Categorical
)

func (k Kind) String() string {
	if k == Numerical {
		return "Numerical"
	}
	return "Categorical"
}

// FeatureColumn is an ordered, length-N sequence of values, either numerical
// or categorical, with Missing entries permitted anywhere.
type FeatureColumn struct {
	name   string
	kind   Kind
	values []float64 // real values, or integer codes for Categorical, or Missing

	forward map[string]int // label -> code, Categorical only
	reverse []string       // code -> label, Categorical only
}

// Name returns the column's name.
func (c *FeatureColumn) Name() string { return c.name }

// Kind returns Numerical or Categorical.
func (c *FeatureColumn) Kind() Kind { return c.kind }

// Len returns the number of samples (rows) in the column.
func (c *FeatureColumn) Len() int { return len(c.values) }

// Value returns the raw float64 stored at row s: a real measurement, an
// integer category code, or Missing.
func (c *FeatureColumn) Value(s int) float64 { return c.values[s] }

// NCategories returns the number of distinct categories observed, or 0 for
// a Numerical column.
func (c *FeatureColumn) NCategories() int { return len(c.reverse) }

// Categories returns the ordered list of category labels indexed by code.
// Empty for a Numerical column.
func (c *FeatureColumn) Categories() []string {
	out := make([]string, len(c.reverse))
	copy(out, c.reverse)
	return out
}

// NRealSamples counts the non-Missing entries in the column.
func (c *FeatureColumn) NRealSamples() int {
	n := 0
	for _, v := range c.values {
		if !isMissing(v) {
			n++
		}
	}
	return n
}

// RawValue renders row s as a string: the formatted number for Numerical,
// the label for Categorical, or the canonical Missing spelling ("NaN").
func (c *FeatureColumn) RawValue(s int) (string, error) {
	v := c.values[s]
	if isMissing(v) {
		return "NaN", nil
	}
	if c.kind == Numerical {
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	code := int(v)
	if code < 0 || code >= len(c.reverse) {
		return "", ErrUnknownCategoryCode
	}
	return c.reverse[code], nil
}

// newNumericalColumn builds a Numerical FeatureColumn from parsed values.
func newNumericalColumn(name string, values []float64) *FeatureColumn {
	return &FeatureColumn{name: name, kind: Numerical, values: values}
}

// newCategoricalColumn builds a Categorical FeatureColumn from raw string
// labels, assigning integer codes in first-seen order. isMissingVal reports
// whether a raw label should decode to Missing.
func newCategoricalColumn(name string, raw []string, isMissingVal func(string) bool) *FeatureColumn {
	forward := make(map[string]int)
	reverse := make([]string, 0)
	values := make([]float64, len(raw))
	for i, s := range raw {
		if isMissingVal(s) {
			values[i] = Missing
			continue
		}
		code, ok := forward[s]
		if !ok {
			code = len(reverse)
			forward[s] = code
			reverse = append(reverse, s)
		}
		values[i] = float64(code)
	}
	return &FeatureColumn{name: name, kind: Categorical, forward: forward, reverse: reverse, values: values}
}

// shuffledCopy returns a column with the same name+"_CONTRAST", the same
// kind and multiset of values, reordered by a Fisher-Yates shuffle driven by
// rng. The category forward/reverse maps, if any, are shared by reference
// since codes are unaffected by the permutation.
func (c *FeatureColumn) shuffledCopy(rng *rng) *FeatureColumn {
	values := make([]float64, len(c.values))
	copy(values, c.values)
	fisherYatesShuffle(values, rng)
	return &FeatureColumn{
		name:    c.name + "_CONTRAST",
		kind:    c.kind,
		values:  values,
		forward: c.forward,
		reverse: c.reverse,
	}
}

// replaceNumerical replaces the column's values wholesale, converting it to
// Numerical and clearing any category maps. Length must match the existing
// column length.
func (c *FeatureColumn) replaceNumerical(values []float64) error {
	if len(values) != len(c.values) {
		return ErrColumnLengthMismatch
	}
	c.kind = Numerical
	c.values = values
	c.forward = nil
	c.reverse = nil
	return nil
}

// replaceRaw replaces the column's values wholesale from raw string labels,
// converting it to Categorical. Length must match the existing column length.
func (c *FeatureColumn) replaceRaw(raw []string, isMissingVal func(string) bool) error {
	if len(raw) != len(c.values) {
		return ErrColumnLengthMismatch
	}
	replacement := newCategoricalColumn(c.name, raw, isMissingVal)
	c.kind = replacement.kind
	c.values = replacement.values
	c.forward = replacement.forward
	c.reverse = replacement.reverse
	return nil
}
