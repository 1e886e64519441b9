package rface

import (
	"math"
	"sort"
)

// SplitCategorical finds the best category bipartition of feature (which
// must be Categorical) against target (Numerical or Categorical), restricted
// to rows in candidates where both are non-Missing, subject to a minimum of
// minSamples rows per child. Starting with every category on the right, it
// greedily moves whichever remaining category most improves the combined
// child impurity over the best improvement committed so far, committing
// that move and repeating until no remaining move helps or only one
// category is left on the right.
func (d *Dataset) SplitCategorical(target, feature, minSamples int, candidates []int) (CategoricalSplitResult, error) {
	if minSamples < 1 {
		return CategoricalSplitResult{}, ErrInvalidMinSamples
	}
	if d.IsNumerical(feature) {
		return CategoricalSplitResult{}, ErrFeatureKindMismatch
	}

	tv, fv, orig := d.filteredPair(target, feature, candidates)
	n := len(tv)
	if n < 2*minSamples {
		return missingCategoricalSplit(), nil
	}

	bucket := make(map[int][]int) // category code -> positions into tv/fv/orig
	var codes []int
	for pos, f := range fv {
		c := int(f)
		if _, ok := bucket[c]; !ok {
			codes = append(codes, c)
		}
		bucket[c] = append(bucket[c], pos)
	}
	sort.Ints(codes)

	targetNumerical := d.IsNumerical(target)

	left := &sseAccumulator{}
	right := &sseAccumulator{}
	leftF := newFreqAccumulator()
	rightF := newFreqAccumulator()
	if targetNumerical {
		for _, v := range tv {
			right.add(v)
		}
	} else {
		for _, v := range tv {
			rightF.add(int(v))
		}
	}

	remaining := append([]int(nil), codes...)
	committed := make(map[int]bool, len(codes))

	overallBest := math.Inf(1)
	if !targetNumerical {
		overallBest = math.Inf(-1)
	}

	for len(remaining) > 1 {
		bestCandidateIdx := -1
		var bestCandidateVal float64
		for i, c := range remaining {
			positions := bucket[c]

			if targetNumerical {
				for _, p := range positions {
					left.add(tv[p])
				}
				for _, p := range positions {
					_ = right.remove(tv[p])
				}
				candidate := left.sse + right.sse
				for _, p := range positions {
					_ = left.remove(tv[p])
				}
				for _, p := range positions {
					right.add(tv[p])
				}
				if bestCandidateIdx == -1 || candidate < bestCandidateVal {
					bestCandidateVal = candidate
					bestCandidateIdx = i
				}
			} else {
				for _, p := range positions {
					leftF.add(int(tv[p]))
				}
				for _, p := range positions {
					_ = rightF.remove(int(tv[p]))
				}
				nl, nr := float64(leftF.n), float64(rightF.n)
				candidate := (nr*leftF.sf + nl*rightF.sf) / (nl * nr)
				for _, p := range positions {
					_ = leftF.remove(int(tv[p]))
				}
				for _, p := range positions {
					rightF.add(int(tv[p]))
				}
				if bestCandidateIdx == -1 || candidate > bestCandidateVal {
					bestCandidateVal = candidate
					bestCandidateIdx = i
				}
			}
		}

		improves := bestCandidateVal < overallBest
		if !targetNumerical {
			improves = bestCandidateVal > overallBest
		}
		if !improves {
			break
		}

		c := remaining[bestCandidateIdx]
		for _, p := range bucket[c] {
			if targetNumerical {
				left.add(tv[p])
				_ = right.remove(tv[p])
			} else {
				leftF.add(int(tv[p]))
				_ = rightF.remove(int(tv[p]))
			}
		}
		committed[c] = true
		overallBest = bestCandidateVal
		remaining = append(remaining[:bestCandidateIdx], remaining[bestCandidateIdx+1:]...)
	}

	var nl, nr int
	if targetNumerical {
		nl, nr = left.n, right.n
	} else {
		nl, nr = leftF.n, rightF.n
	}
	if nl < minSamples || nr < minSamples {
		return missingCategoricalSplit(), nil
	}

	var fitness float64
	if targetNumerical {
		sTot := sseOf(tv)
		if sTot == 0 {
			return missingCategoricalSplit(), nil
		}
		fitness = (sTot - (left.sse + right.sse)) / sTot
	} else {
		sfTot := sfOfFloats(tv)
		denom := float64(n)*float64(n) - sfTot
		if denom == 0 {
			return missingCategoricalSplit(), nil
		}
		nsf := (float64(nr)*leftF.sf + float64(nl)*rightF.sf) / (float64(nl) * float64(nr))
		fitness = (-sfTot + float64(n)*nsf) / denom
	}

	var leftCats, rightCats []int
	for _, c := range codes {
		if committed[c] {
			leftCats = append(leftCats, c)
		} else {
			rightCats = append(rightCats, c)
		}
	}

	var leftIdx, rightIdx []int
	for _, c := range codes {
		for _, p := range bucket[c] {
			if committed[c] {
				leftIdx = append(leftIdx, orig[p])
			} else {
				rightIdx = append(rightIdx, orig[p])
			}
		}
	}

	return CategoricalSplitResult{
		Fitness:         fitness,
		LeftCategories:  leftCats,
		RightCategories: rightCats,
		Left:            leftIdx,
		Right:           rightIdx,
	}, nil
}

// sseOf computes the sum-of-squared-errors of a full slice from scratch, via
// the same Welford recurrence used incrementally elsewhere.
func sseOf(values []float64) float64 {
	acc := &sseAccumulator{}
	for _, v := range values {
		acc.add(v)
	}
	return acc.sse
}

// sfOfFloats computes Σ fc² over a slice of target values holding category
// codes (stored as float64, as FeatureColumn does).
func sfOfFloats(values []float64) float64 {
	acc := newFreqAccumulator()
	for _, v := range values {
		acc.add(int(v))
	}
	return acc.sf
}
