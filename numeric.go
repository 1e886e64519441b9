package rface

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// Missing is the sentinel for an absent observation: a real number that is
// not equal to itself. Every FeatureColumn value is compared against it with
// isMissing, never with ==.
var Missing = math.NaN()

func isMissing(x float64) bool {
	return x != x
}

func mean[T constraints.Float | constraints.Integer](data []T) float64 {
	if len(data) == 0 {
		return 0
	}
	return float64(sum(data)) / float64(len(data))
}

func sum[T constraints.Float | constraints.Integer](data []T) T {
	var s T
	for _, d := range data {
		s += d
	}
	return s
}

// MeanVariance returns the plain (non-incremental) mean and variance of x.
func MeanVariance(x []float64) (mu, variance float64) {
	return stat.MeanVariance(x, nil)
}

// Correlation returns the Pearson correlation coefficient between x and y.
func Correlation(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}

// stableSort returns values filtered of Missing entries, sorted ascending,
// together with the index permutation into the original (unfiltered) slice:
// sorted[i] == values[perm[i]]. Ties break by original position.
func stableSort(values []float64) (sorted []float64, perm []int) {
	perm = make([]int, 0, len(values))
	for i, v := range values {
		if !isMissing(v) {
			perm = append(perm, i)
		}
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return values[perm[i]] < values[perm[j]]
	})
	sorted = make([]float64, len(perm))
	for i, p := range perm {
		sorted[i] = values[p]
	}
	return sorted, perm
}

// sseAccumulator maintains a running mean and sum-of-squared-errors using
// Welford's recurrence, incremented and decremented one sample at a time.
type sseAccumulator struct {
	n    int
	mean float64
	sse  float64
}

// add folds x into the accumulator.
func (a *sseAccumulator) add(x float64) {
	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.sse += delta * (x - a.mean)
}

// remove is the exact inverse of add. It is a PreconditionViolation to call
// remove on an empty accumulator.
func (a *sseAccumulator) remove(x float64) error {
	if a.n == 0 {
		return ErrEmptyAccumulator
	}
	delta := x - a.mean
	a.n--
	if a.n == 0 {
		a.mean = 0
		a.sse = 0
		return nil
	}
	a.mean -= delta / float64(a.n)
	a.sse -= delta * (x - a.mean)
	return nil
}

// freqAccumulator maintains counts per category code and the running sum of
// squared frequencies (Σ fc²) used by the categorical-target Gini formulas.
type freqAccumulator struct {
	counts map[int]int
	sf     float64
	n      int
}

func newFreqAccumulator() *freqAccumulator {
	return &freqAccumulator{counts: make(map[int]int)}
}

// add folds category c into the accumulator.
func (a *freqAccumulator) add(c int) {
	fc := a.counts[c]
	a.sf += float64(2*fc + 1)
	a.counts[c] = fc + 1
	a.n++
}

// remove is the exact inverse of add. It is a PreconditionViolation to
// remove a category with zero count.
func (a *freqAccumulator) remove(c int) error {
	fc := a.counts[c]
	if fc < 1 {
		return ErrEmptyAccumulator
	}
	a.sf += float64(-2*fc + 1)
	a.counts[c] = fc - 1
	a.n--
	return nil
}
