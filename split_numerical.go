package rface

// SplitNumerical finds the best threshold split of feature (which must be
// Numerical) against target (Numerical or Categorical), restricted to rows
// in candidates where both are non-Missing, subject to a minimum of
// minSamples rows per child. Rows are sorted by feature value and every
// admissible boundary between distinct values is scored; the boundary with
// the best combined child impurity wins.
func (d *Dataset) SplitNumerical(target, feature, minSamples int, candidates []int) (SplitResult, error) {
	if minSamples < 1 {
		return SplitResult{}, ErrInvalidMinSamples
	}
	if !d.IsNumerical(feature) {
		return SplitResult{}, ErrFeatureKindMismatch
	}

	tv, fv, orig := d.filteredPair(target, feature, candidates)
	sortedFV, perm := stableSort(fv)
	n := len(sortedFV)
	if n < 2*minSamples {
		return missingSplit(), nil
	}

	sortedTV := make([]float64, n)
	sortedOrig := make([]int, n)
	for i, p := range perm {
		sortedTV[i] = tv[p]
		sortedOrig[i] = orig[p]
	}

	var bestK int
	var bestCost, fitness float64
	var found bool
	if d.IsNumerical(target) {
		var sTot float64
		bestK, bestCost, sTot, found = bestNumericalTargetBoundary(sortedTV, sortedFV, minSamples)
		if !found || sTot == 0 {
			return missingSplit(), nil
		}
		fitness = (sTot - bestCost) / sTot
	} else {
		codes := make([]int, n)
		for i, v := range sortedTV {
			codes[i] = int(v)
		}
		var nsfBest, sfTot float64
		bestK, nsfBest, sfTot, found = bestCategoricalTargetBoundary(codes, sortedFV, minSamples)
		if !found {
			return missingSplit(), nil
		}
		denom := float64(n)*float64(n) - sfTot
		if denom == 0 {
			return missingSplit(), nil
		}
		fitness = (-sfTot + float64(n)*nsfBest) / denom
	}

	return SplitResult{
		Fitness:   fitness,
		Threshold: sortedFV[bestK-1],
		Left:      append([]int(nil), sortedOrig[:bestK]...),
		Right:     append([]int(nil), sortedOrig[bestK:]...),
	}, nil
}

// bestNumericalTargetBoundary finds the boundary k (left = rows [0,k), right
// = rows [k,n)) minimizing combined child SSE. It builds a left-to-right
// running prefix of SSE values, then sweeps right-to-left accumulating the
// matching right-side SSE, comparing the two at every boundary where the
// feature value actually changes. sTot is the total SSE over all n rows
// (= prefixSSE[n-1]).
func bestNumericalTargetBoundary(tv, fv []float64, minSamples int) (bestK int, bestCost, sTot float64, found bool) {
	n := len(tv)
	prefixSSE := make([]float64, n)
	left := &sseAccumulator{}
	for k := 0; k < n; k++ {
		left.add(tv[k])
		prefixSSE[k] = left.sse
	}
	sTot = prefixSSE[n-1]

	right := &sseAccumulator{}
	for k := n - 1; k >= minSamples; k-- {
		right.add(tv[k])
		if k-1 < 0 || fv[k-1] == fv[k] {
			continue
		}
		if k-1 < minSamples-1 || n-k < minSamples {
			continue
		}
		cost := prefixSSE[k-1] + right.sse
		if !found || cost < bestCost {
			bestCost = cost
			bestK = k
			found = true
		}
	}
	return bestK, bestCost, sTot, found
}

// bestCategoricalTargetBoundary finds the boundary k maximizing the
// weighted child squared-frequency sum, using the same left-prefix /
// right-sweep shape as bestNumericalTargetBoundary but accumulating Σfc²
// per child instead of SSE. sfTot is Σfc² over all n rows (= prefixSF[n-1]).
func bestCategoricalTargetBoundary(codes []int, fv []float64, minSamples int) (bestK int, nsfBest, sfTot float64, found bool) {
	n := len(codes)
	prefixSF := make([]float64, n)
	left := newFreqAccumulator()
	for k := 0; k < n; k++ {
		left.add(codes[k])
		prefixSF[k] = left.sf
	}
	sfTot = prefixSF[n-1]

	right := newFreqAccumulator()
	for k := n - 1; k >= minSamples; k-- {
		right.add(codes[k])
		if k-1 < 0 || fv[k-1] == fv[k] {
			continue
		}
		if k-1 < minSamples-1 || n-k < minSamples {
			continue
		}
		nl, nr := float64(k), float64(n-k)
		score := nr*prefixSF[k-1] + nl*right.sf
		candidate := score / (nl * nr)
		if !found || candidate > nsfBest {
			nsfBest = candidate
			bestK = k
			found = true
		}
	}
	return bestK, nsfBest, sfTot, found
}
