package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupKey_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     GroupKey
		expected bool
	}{
		{name: "script decides", a: NewGroupKey("A", "z"), b: NewGroupKey("B", "a"), expected: true},
		{name: "transaction breaks tie", a: NewGroupKey("A", "a"), b: NewGroupKey("A", "b"), expected: true},
		{name: "equal keys", a: NewGroupKey("A", "a"), b: NewGroupKey("A", "a"), expected: false},
		{name: "case sensitive", a: NewGroupKey("login", "x"), b: NewGroupKey("Login", "x"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.a.Less(tt.b))
		})
	}
}

func TestGroupKey_ExactEquality(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, NewGroupKey("Login", "Submit"), NewGroupKey("Login ", "Submit"))
	assert.Equal(t, "Login/Submit", NewGroupKey("Login", "Submit").String())
}

func TestMeasurementRow_Valid(t *testing.T) {
	t.Parallel()

	key := NewGroupKey("Login", "Submit")
	tests := []struct {
		name     string
		row      MeasurementRow
		expected bool
	}{
		{name: "positive value and weight", row: MeasurementRow{Key: key, Value: 0.2, Weight: 1}, expected: true},
		{name: "zero value", row: MeasurementRow{Key: key, Value: 0, Weight: 1}, expected: false},
		{name: "negative value", row: MeasurementRow{Key: key, Value: -1, Weight: 1}, expected: false},
		{name: "zero weight", row: MeasurementRow{Key: key, Value: 1, Weight: 0}, expected: false},
		{name: "negative weight", row: MeasurementRow{Key: key, Value: 1, Weight: -3}, expected: false},
		{name: "NaN value", row: MeasurementRow{Key: key, Value: math.NaN(), Weight: 1}, expected: false},
		{name: "NaN weight", row: MeasurementRow{Key: key, Value: 1, Weight: math.NaN()}, expected: false},
		{name: "infinite value", row: MeasurementRow{Key: key, Value: math.Inf(1), Weight: 1}, expected: false},
		{name: "infinite weight", row: MeasurementRow{Key: key, Value: 1, Weight: math.Inf(1)}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.row.Valid())
		})
	}
}

func TestPercentileLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "p50", PercentileLabel(50))
	assert.Equal(t, "p99.9", PercentileLabel(99.9))
	assert.Equal(t, "p0", PercentileLabel(0))
}

func TestReportRow_Percentile(t *testing.T) {
	t.Parallel()

	row := ReportRow{Percentiles: []PercentileValue{
		{Label: "p50", Target: 50, Value: 1.5},
		{Label: "p99", Target: 99, Value: 3},
	}}
	assert.Equal(t, 1.5, row.Percentile(50))
	assert.Equal(t, 3.0, row.Percentile(99))
	assert.Equal(t, 0.0, row.Percentile(95))
}
