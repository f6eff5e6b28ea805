package models

import "math"

// MeasurementRow is one weighted response-time sample pulled from a batch source.
// Weight is the occurrence count of Value in the underlying event table.
type MeasurementRow struct {
	Key    GroupKey
	Value  float64
	Weight float64
}

// Valid reports whether the row may contribute to a percentile.
// Rows with a non-positive, NaN or infinite value or weight are noise and get dropped.
func (r MeasurementRow) Valid() bool {
	return r.Value > 0 && r.Weight > 0 && !math.IsInf(r.Value, 0) && !math.IsInf(r.Weight, 0)
}

// Batch is one bounded block of rows returned by a single pull from a batch source.
type Batch []MeasurementRow
