package rface

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return ids
}

func TestNewDatasetRowMajor(t *testing.T) {
	raw := [][]string{
		{"1.0", "red"},
		{"2.0", "blue"},
		{"3.0", ""},
	}
	names := []string{"age", "color"}
	kinds := []Kind{Numerical, Categorical}

	ds, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(3), DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, 2, ds.NFeatures())
	require.Equal(t, 3, ds.NSamples())
	require.True(t, ds.IsNumerical(0))
	require.False(t, ds.IsNumerical(1))

	ageIdx, err := ds.IndexOf("age")
	require.NoError(t, err)
	require.Equal(t, 0, ageIdx)

	colorIdx, err := ds.IndexOf("color")
	require.NoError(t, err)
	require.Equal(t, 2, ds.NRealSamples(colorIdx))
}

func TestNewDatasetColumnMajor(t *testing.T) {
	raw := [][]string{
		{"1.0", "2.0", "3.0"},
		{"red", "blue", ""},
	}
	names := []string{"age", "color"}
	kinds := []Kind{Numerical, Categorical}

	ds, err := NewDataset(raw, ColumnMajor, names, kinds, sampleIDs(3), DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 2.0, ds.Column(0).Value(1))
}

func TestNewDatasetMaterializesPairedContrasts(t *testing.T) {
	raw := [][]string{{"1.0"}, {"2.0"}, {"3.0"}, {"4.0"}}
	names := []string{"x"}
	kinds := []Kind{Numerical}

	ds, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(4), DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, 2, len(ds.columns))
	require.Equal(t, "x", ds.columns[0].Name())
	require.Equal(t, "x_CONTRAST", ds.columns[1].Name())

	wantSum := ds.columns[0].values[0] + ds.columns[0].values[1] + ds.columns[0].values[2] + ds.columns[0].values[3]
	gotSum := ds.columns[1].values[0] + ds.columns[1].values[1] + ds.columns[1].values[2] + ds.columns[1].values[3]
	require.Equal(t, wantSum, gotSum)
}

func TestNewDatasetRejectsDuplicateNames(t *testing.T) {
	raw := [][]string{{"1.0", "2.0"}}
	names := []string{"x", "x"}
	kinds := []Kind{Numerical, Numerical}

	_, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(1), DefaultConfig())
	require.ErrorIs(t, err, ErrDuplicateColumnName)
}

func TestNewDatasetRejectsRowLengthMismatch(t *testing.T) {
	raw := [][]string{{"1.0", "2.0"}, {"3.0"}}
	names := []string{"a", "b"}
	kinds := []Kind{Numerical, Numerical}

	_, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(2), DefaultConfig())
	require.ErrorIs(t, err, ErrRowLengthMismatch)
}

func TestWhitelistKeepsOnlyNamedColumnsAndContrasts(t *testing.T) {
	raw := [][]string{{"1.0", "2.0", "a"}, {"3.0", "4.0", "b"}}
	names := []string{"x", "y", "z"}
	kinds := []Kind{Numerical, Numerical, Categorical}

	ds, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(2), DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, ds.Whitelist([]string{"y"}))
	require.Equal(t, 1, ds.NFeatures())
	require.Equal(t, "y", ds.columns[0].Name())
	require.Equal(t, "y_CONTRAST", ds.columns[1].Name())
}

func TestBlacklistDropsNamedColumns(t *testing.T) {
	raw := [][]string{{"1.0", "2.0", "a"}, {"3.0", "4.0", "b"}}
	names := []string{"x", "y", "z"}
	kinds := []Kind{Numerical, Numerical, Categorical}

	ds, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(2), DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, ds.Blacklist([]string{"x", "z"}))
	require.Equal(t, 1, ds.NFeatures())
	require.Equal(t, "y", ds.columns[0].Name())
}

func TestWhitelistRejectsUnknownName(t *testing.T) {
	raw := [][]string{{"1.0"}, {"2.0"}}
	names := []string{"x"}
	kinds := []Kind{Numerical}

	ds, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(2), DefaultConfig())
	require.NoError(t, err)

	err = ds.Whitelist([]string{"nope"})
	require.ErrorIs(t, err, ErrUnknownColumnName)
}

func TestPermuteContrastsReshufflesEveryContrast(t *testing.T) {
	raw := make([][]string, 20)
	for i := range raw {
		raw[i] = []string{"1.5"}
	}
	raw[0][0] = "9.5"
	names := []string{"x"}
	kinds := []Kind{Numerical}

	ds, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(20), DefaultConfig())
	require.NoError(t, err)

	before := append([]float64(nil), ds.columns[1].values...)
	ds.PermuteContrasts()
	after := ds.columns[1].values

	sameOrder := true
	for i := range before {
		if before[i] != after[i] {
			sameOrder = false
			break
		}
	}
	require.False(t, sameOrder, "PermuteContrasts should reorder the contrast column")
}

func TestFilteredPairSkipsMissingRowsInEitherColumn(t *testing.T) {
	raw := [][]string{
		{"1.0", "2.0"},
		{"", "3.0"},
		{"4.0", ""},
		{"5.0", "6.0"},
	}
	names := []string{"a", "b"}
	kinds := []Kind{Numerical, Numerical}

	ds, err := NewDataset(raw, RowMajor, names, kinds, sampleIDs(4), DefaultConfig())
	require.NoError(t, err)

	tv, fv, orig := ds.filteredPair(0, 1, []int{0, 1, 2, 3})
	require.Equal(t, []int{0, 3}, orig)
	require.Equal(t, []float64{1.0, 5.0}, tv)
	require.Equal(t, []float64{2.0, 6.0}, fv)
}
