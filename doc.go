// Package rface implements the split-finding and data-indexing engine of an
// RF-ACE-style Random Forest / Gradient Boosting Trees ensemble.
//
// It holds the typed, missing-value-aware feature matrix (Dataset and
// FeatureColumn), draws bootstrap/out-of-bag samples over the non-missing
// rows of a reference column, and answers the two questions a tree-growing
// loop asks at every candidate node: what is the best threshold split on a
// numerical feature, and what is the best category bipartition on a
// categorical feature. Tree growing, ensemble aggregation, file-format
// parsing (AFM/ARFF) and CLI handling are the responsibility of external
// callers; this package only implements the interfaces they call into.
//
// # Quick Start
//
// Build a Dataset from an in-memory matrix and grow a node:
//
//	ds, err := rface.NewDataset(raw, rface.RowMajor, names, kinds, sampleIDs, rface.DefaultConfig())
//	inBag, outOfBag, err := ds.Bootstrap(true, 1.0, targetIdx)
//	result, err := ds.SplitNumerical(targetIdx, featureIdx, 5, inBag)
//	if !math.IsNaN(result.Fitness) {
//		// grow result.Left and result.Right as child nodes
//	}
//
// # Contrast columns
//
// Every user column has a paired "_CONTRAST" shadow column, a fixed
// permutation of its values materialized at construction time and used as a
// null baseline by the (external) significance-testing layer.
package rface
