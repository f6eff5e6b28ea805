package analytics

import (
	"sort"

	"lre-analytics/internal/models"
)

// Merge left-joins summary rows with the percentile mapping. Groups without a
// percentile result get 0 for every target. Rows come back sorted by
// (script, transaction).
func Merge(summaries []models.SummaryRow, results map[models.GroupKey]models.PercentileResult, targets []float64) []models.ReportRow {
	rows := make([]models.ReportRow, 0, len(summaries))
	for _, summary := range summaries {
		result, ok := results[summary.GroupKey]
		values := make([]models.PercentileValue, len(targets))
		for i, target := range targets {
			values[i] = models.PercentileValue{Label: models.PercentileLabel(target), Target: target}
			if ok && i < len(result.Values) {
				values[i].Value = result.Values[i]
			}
		}
		rows = append(rows, models.ReportRow{SummaryRow: summary, Percentiles: values})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].GroupKey.Less(rows[j].GroupKey)
	})
	return rows
}
