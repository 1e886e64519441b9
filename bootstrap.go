package rface

import "sort"

// Bootstrap draws an in-bag / out-of-bag index split over the non-Missing
// rows of refColumn. With replacement, k = floor(sampleFraction*r) draws are
// taken uniformly at random with repetition from the real-sample set R (size
// r); without replacement, R is Fisher-Yates shuffled and the first k taken,
// which requires sampleFraction <= 1. Successive calls consume the
// Dataset's RNG and are reproducible given its seed.
func (d *Dataset) Bootstrap(withReplacement bool, sampleFraction float64, refColumn int) (inBag, outOfBag []int, err error) {
	if sampleFraction <= 0 {
		return nil, nil, ErrSampleFractionInvalid
	}
	if !withReplacement && sampleFraction > 1 {
		return nil, nil, ErrSampleFractionInvalid
	}

	real := realIndices(d.columns[refColumn])
	r := len(real)
	k := int(sampleFraction * float64(r))

	var inBagSet []int
	if withReplacement {
		inBagSet = make([]int, k)
		for i := range inBagSet {
			inBagSet[i] = real[d.rng.intn(r)]
		}
	} else {
		shuffled := append([]int(nil), real...)
		fisherYatesShuffleInts(shuffled, d.rng)
		inBagSet = append([]int(nil), shuffled[:k]...)
	}

	sort.Ints(inBagSet)
	outOfBag = setDifferenceSorted(real, inBagSet)
	return inBagSet, outOfBag, nil
}

// realIndices returns the sorted indices of c's non-Missing entries.
func realIndices(c *FeatureColumn) []int {
	out := make([]int, 0, len(c.values))
	for s, v := range c.values {
		if !isMissing(v) {
			out = append(out, s)
		}
	}
	return out
}

// setDifferenceSorted returns the elements of `all` not present in `drawn`,
// both assumed sorted ascending; `drawn` may contain duplicates (with
// replacement) and need not be a subset of `all` after intersecting.
func setDifferenceSorted(all, drawn []int) []int {
	drawnSet := make(map[int]struct{}, len(drawn))
	for _, v := range drawn {
		drawnSet[v] = struct{}{}
	}
	out := make([]int, 0, len(all))
	for _, v := range all {
		if _, ok := drawnSet[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}
