package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lre-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *models.Report {
	return &models.Report{
		ReportID: "rep-1",
		RunID:    "4711",
		Strategy: models.StrategyExact,
		Targets:  []float64{50, 99.9},
		Rows: []models.ReportRow{
			{
				SummaryRow: models.SummaryRow{
					GroupKey:         models.NewGroupKey("Login", "Submit"),
					TransactionCount: 3, Minimum: 0.1, Average: 0.2, Maximum: 0.3, StdDeviation: 0.082, Pass: 3,
				},
				Percentiles: []models.PercentileValue{
					{Label: "p50", Target: 50, Value: 0.15},
					{Label: "p99.9", Target: 99.9, Value: 0.2997},
				},
			},
			{
				SummaryRow: models.SummaryRow{
					GroupKey:         models.NewGroupKey("Login", "Timeout"),
					TransactionCount: 2, Fail: 2,
				},
				Percentiles: []models.PercentileValue{
					{Label: "p50", Target: 50}, {Label: "p99.9", Target: 99.9},
				},
			},
		},
		Stats: models.RunStats{RowsRead: 3, Batches: 1, Groups: 1, Resolved: 1},
	}
}

func TestTablePrinter_Print(t *testing.T) {
	t.Parallel()

	printer, err := NewReportPrinter(FormatTable, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Print(&buf, sampleReport()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	border := "+--------+-------------+-------+-------+-------+-------+-------+------+------+-------+-------+"
	assert.Equal(t, border, lines[0])
	assert.Equal(t, "| Script | Transaction | Count | Min   | Avg   | Max   | Std   | Pass | Fail | p50   | p99.9 |", lines[1])
	assert.Equal(t, border, lines[2])
	assert.Equal(t, "| Login  | Submit      | 3     | 0.100 | 0.200 | 0.300 | 0.082 | 3    | 0    | 0.150 | 0.300 |", lines[3])
	assert.Equal(t, "| Login  | Timeout     | 2     | 0.000 | 0.000 | 0.000 | 0.000 | 0    | 2    | 0.000 | 0.000 |", lines[4])
	assert.Equal(t, border, lines[5])
	assert.Contains(t, lines[6], "run 4711")
	assert.Contains(t, lines[6], "strategy exact")
	assert.Contains(t, lines[6], "groups 1 (resolved 1, insufficient 0, failed 0)")
}

func TestTablePrinter_AllLinesSameWidth(t *testing.T) {
	t.Parallel()

	report := sampleReport()
	report.Rows[0].Script = "Checkout-with-a-very-long-script-name"

	printer, err := NewReportPrinter(FormatTable, true)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, printer.Print(&buf, report))

	lines := strings.Split(buf.String(), "\n")
	for _, line := range lines[:6] {
		assert.Len(t, line, len(lines[0]))
	}
}

func TestJSONPrinter_Print(t *testing.T) {
	t.Parallel()

	printer, err := NewReportPrinter(FormatJSON, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Print(&buf, sampleReport()))

	var got models.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "rep-1", got.ReportID)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, 0.15, got.Rows[0].Percentile(50))
}

func TestNewReportPrinter_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := NewReportPrinter("xml", false)
	assert.ErrorContains(t, err, "unknown output format")
}
