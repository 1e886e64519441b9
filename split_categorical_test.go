package rface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCategoricalNumericalTargetGreedyTransfer(t *testing.T) {
	raw := [][]string{
		{"1", "A"}, {"2", "A"},
		{"10", "B"}, {"11", "B"},
		{"20", "C"}, {"21", "C"},
	}
	ds := newSplitFixture(t, []string{"target", "feature"}, []Kind{Numerical, Categorical}, raw)

	result, err := ds.SplitCategorical(0, 1, 2, allRows(6))
	require.NoError(t, err)
	require.False(t, math.IsNaN(result.Fitness))

	cIdx, err := ds.IndexOf("feature")
	require.NoError(t, err)
	cCode := func(label string) int {
		for code, name := range ds.Categories(cIdx) {
			if name == label {
				return code
			}
		}
		t.Fatalf("label %q not found", label)
		return -1
	}

	require.Equal(t, []int{cCode("C")}, result.LeftCategories)
	require.ElementsMatch(t, []int{cCode("A"), cCode("B")}, result.RightCategories)
	require.ElementsMatch(t, []int{4, 5}, result.Left)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, result.Right)

	wantFitness := 1682.0 / 2177.0
	require.InDelta(t, wantFitness, result.Fitness, 1e-6)
}

func TestSplitCategoricalRejectsWrongFeatureKind(t *testing.T) {
	raw := [][]string{{"1", "1"}, {"2", "2"}}
	ds := newSplitFixture(t, []string{"target", "feature"}, []Kind{Numerical, Numerical}, raw)

	_, err := ds.SplitCategorical(0, 1, 1, allRows(2))
	require.ErrorIs(t, err, ErrFeatureKindMismatch)
}

func TestSplitCategoricalRejectsInvalidMinSamples(t *testing.T) {
	raw := [][]string{{"1", "a"}, {"2", "b"}}
	ds := newSplitFixture(t, []string{"target", "feature"}, []Kind{Numerical, Categorical}, raw)

	_, err := ds.SplitCategorical(0, 1, 0, allRows(2))
	require.ErrorIs(t, err, ErrInvalidMinSamples)
}

func TestSplitCategoricalSingleCategoryReturnsMissing(t *testing.T) {
	raw := [][]string{{"1", "a"}, {"2", "a"}, {"3", "a"}, {"4", "a"}}
	ds := newSplitFixture(t, []string{"target", "feature"}, []Kind{Numerical, Categorical}, raw)

	result, err := ds.SplitCategorical(0, 1, 1, allRows(4))
	require.NoError(t, err)
	require.True(t, math.IsNaN(result.Fitness))
}

func TestSplitCategoricalHonorsMinSamplesPerChild(t *testing.T) {
	raw := [][]string{
		{"1", "A"}, {"2", "B"}, {"3", "C"}, {"4", "D"},
	}
	ds := newSplitFixture(t, []string{"target", "feature"}, []Kind{Numerical, Categorical}, raw)

	result, err := ds.SplitCategorical(0, 1, 2, allRows(4))
	require.NoError(t, err)
	require.False(t, math.IsNaN(result.Fitness))
	require.Len(t, result.Left, 2)
	require.Len(t, result.Right, 2)
	require.InDelta(t, 0.8, result.Fitness, 1e-9)
}

func TestSplitCategoricalRejectsUnreachableMinSamples(t *testing.T) {
	raw := [][]string{
		{"1", "A"}, {"2", "B"}, {"3", "C"},
	}
	ds := newSplitFixture(t, []string{"target", "feature"}, []Kind{Numerical, Categorical}, raw)

	result, err := ds.SplitCategorical(0, 1, 2, allRows(3))
	require.NoError(t, err)
	require.True(t, math.IsNaN(result.Fitness), "3 rows cannot satisfy minSamples=2 on both children")
}

func TestSplitCategoricalCategoricalTargetProducesAdmissibleSplit(t *testing.T) {
	raw := [][]string{
		{"x", "A"}, {"x", "A"}, {"y", "B"}, {"y", "B"}, {"y", "C"}, {"x", "C"},
	}
	ds := newSplitFixture(t, []string{"target", "feature"}, []Kind{Categorical, Categorical}, raw)

	result, err := ds.SplitCategorical(0, 1, 1, allRows(6))
	require.NoError(t, err)
	require.False(t, math.IsNaN(result.Fitness))
	require.NotEmpty(t, result.LeftCategories)
	require.NotEmpty(t, result.RightCategories)
}

func TestSplitCategoricalTooFewRowsReturnsMissing(t *testing.T) {
	raw := [][]string{{"1", "a"}, {"2", "b"}}
	ds := newSplitFixture(t, []string{"target", "feature"}, []Kind{Numerical, Categorical}, raw)

	result, err := ds.SplitCategorical(0, 1, 2, allRows(2))
	require.NoError(t, err)
	require.True(t, math.IsNaN(result.Fitness))
}
