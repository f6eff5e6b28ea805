package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"lre-analytics/internal/models"

	"github.com/fatih/color"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ReportPrinter writes a report to a terminal or a pipe.
type ReportPrinter interface {
	Print(w io.Writer, report *models.Report) error
}

// NewReportPrinter returns the printer of format.
func NewReportPrinter(format string, noColor bool) (ReportPrinter, error) {
	switch format {
	case FormatTable:
		scheme := DefaultColorScheme()
		if noColor {
			scheme = NoColorScheme()
		}
		return &tablePrinter{colors: scheme}, nil
	case FormatJSON:
		return &jsonPrinter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q, want %s or %s", format, FormatTable, FormatJSON)
	}
}

type jsonPrinter struct{}

func (p *jsonPrinter) Print(w io.Writer, report *models.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// tablePrinter renders a bordered table with one row per group:
//
//	+--------+-------------+-------+-----+
//	| Script | Transaction | Count | ... |
//	+--------+-------------+-------+-----+
//	| Login  | Submit      | 3     | ... |
//	+--------+-------------+-------+-----+
type tablePrinter struct {
	colors *ColorScheme
}

type cell struct {
	text  string
	color *color.Color
}

func (p *tablePrinter) Print(w io.Writer, report *models.Report) error {
	rows := p.buildRows(report)

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(c.text))
		}
	}

	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width+2)
	}
	border := p.colors.Border.Sprint("+" + strings.Join(parts, "+") + "+")
	bar := p.colors.Border.Sprint("|")

	var sb strings.Builder
	sb.WriteString(border + "\n")
	for r, row := range rows {
		sb.WriteString(bar)
		for i, c := range row {
			padded := " " + c.text + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c.text)+1)
			if c.color != nil {
				padded = c.color.Sprint(padded)
			}
			sb.WriteString(padded + bar)
		}
		sb.WriteString("\n")
		if r == 0 {
			sb.WriteString(border + "\n")
		}
	}
	sb.WriteString(border + "\n")

	stats := report.Stats
	sb.WriteString(p.colors.Summary.Sprintf(
		"run %s  report %s  strategy %s  rows %d (dropped %d)  batches %d  groups %d (resolved %d, insufficient %d, failed %d)\n",
		report.RunID, report.ReportID, report.Strategy,
		stats.RowsRead, stats.RowsDropped, stats.Batches,
		stats.Groups, stats.Resolved, stats.Insufficient, stats.Failed,
	))

	_, err := io.WriteString(w, sb.String())
	return err
}

func (p *tablePrinter) buildRows(report *models.Report) [][]cell {
	header := []cell{
		{text: "Script"}, {text: "Transaction"}, {text: "Count"},
		{text: "Min"}, {text: "Avg"}, {text: "Max"}, {text: "Std"},
		{text: "Pass"}, {text: "Fail"},
	}
	for _, target := range report.Targets {
		header = append(header, cell{text: models.PercentileLabel(target)})
	}
	for i := range header {
		header[i].color = p.colors.Header
	}

	rows := [][]cell{header}
	for _, row := range report.Rows {
		failColor := (*color.Color)(nil)
		if row.Fail > 0 {
			failColor = p.colors.Fail
		}
		line := []cell{
			{text: row.Script},
			{text: row.Transaction},
			{text: strconv.FormatInt(row.TransactionCount, 10)},
			{text: formatSeconds(row.Minimum)},
			{text: formatSeconds(row.Average)},
			{text: formatSeconds(row.Maximum)},
			{text: formatSeconds(row.StdDeviation)},
			{text: strconv.FormatInt(row.Pass, 10)},
			{text: strconv.FormatInt(row.Fail, 10), color: failColor},
		}
		missing := row.Pass > 0 && allZero(row.Percentiles)
		for _, target := range report.Targets {
			c := cell{text: formatSeconds(row.Percentile(target))}
			if missing {
				c.color = p.colors.Missing
			}
			line = append(line, c)
		}
		rows = append(rows, line)
	}
	return rows
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func allZero(values []models.PercentileValue) bool {
	for _, v := range values {
		if v.Value != 0 {
			return false
		}
	}
	return true
}
