package sources

import (
	"fmt"
	"strings"
)

// The LRE results database stores one Event_meter row per aggregated transaction
// sample. Response time excludes think time; Acount is the number of occurrences.
const sqliteResponseTimesQuery = `
SELECT
    vg."Group Name" AS script_name,
    emap."Event Name" AS transaction_name,
    CAST(em.Value - COALESCE(em."Think Time", 0) AS REAL) AS response_time,
    CAST(em.Acount AS REAL) AS count
FROM Event_meter em
JOIN Script s ON em."Script ID" = s."Script ID"
JOIN Event_map emap ON em."Event Name" = emap."Event Name" AND emap."Event Type" = 'Transaction'
JOIN TransactionEndStatus tes ON em.Status1 = tes.Status1
JOIN VuserGroup vg ON em."Group ID" = vg."Group ID"
WHERE tes."Transaction End Status" = 'Pass'
  AND em.Value IS NOT NULL
  AND em.Acount IS NOT NULL
ORDER BY em.rowid`

// Mean and standard deviation are derived from the raw sums in Go; SQLite builds
// without the math extension lack SQRT and POWER.
const sqliteSummaryQuery = `
SELECT
    vg."Group Name" AS script_name,
    emap."Event Name" AS transaction_name,
    CAST(SUM(em.Acount) AS INTEGER) AS transaction_count,
    MIN(CASE WHEN tes."Transaction End Status" = 'Pass'
             THEN em.Value - COALESCE(em."Think Time", 0) END) AS minimum,
    MAX(CASE WHEN tes."Transaction End Status" = 'Pass'
             THEN em.Value - COALESCE(em."Think Time", 0) END) AS maximum,
    CAST(SUM(CASE WHEN tes."Transaction End Status" = 'Pass'
                  THEN em.Acount ELSE 0 END) AS REAL) AS pass_weight,
    CAST(SUM(CASE WHEN tes."Transaction End Status" = 'Pass'
                  THEN (em.Value - COALESCE(em."Think Time", 0)) * em.Acount ELSE 0 END) AS REAL) AS pass_sum,
    CAST(SUM(CASE WHEN tes."Transaction End Status" = 'Pass'
                  THEN (em.Value - COALESCE(em."Think Time", 0)) * (em.Value - COALESCE(em."Think Time", 0)) * em.Acount
                  ELSE 0 END) AS REAL) AS pass_sum_squares,
    CAST(SUM(CASE WHEN tes."Transaction End Status" = 'Pass' THEN em.Acount ELSE 0 END) AS INTEGER) AS pass,
    CAST(SUM(CASE WHEN tes."Transaction End Status" = 'Fail' THEN em.Acount ELSE 0 END) AS INTEGER) AS fail
FROM Event_meter em
JOIN Script s ON em."Script ID" = s."Script ID"
JOIN Event_map emap ON em."Event Name" = emap."Event Name" AND emap."Event Type" = 'Transaction'
JOIN TransactionEndStatus tes ON em.Status1 = tes.Status1
JOIN VuserGroup vg ON em."Group ID" = vg."Group ID"
GROUP BY vg."Group Name", emap."Event Name"
ORDER BY vg."Group Name", emap."Event Name"`

// Flat measurement exports carry one row per sample with the columns
// script_name, transaction_name, response_time, think_time, count, status.
const exportResponseTimesQuery = `
SELECT
    script_name,
    transaction_name,
    CAST(response_time - COALESCE(think_time, 0) AS DOUBLE) AS response_time,
    CAST("count" AS DOUBLE) AS "count"
FROM %s
WHERE status = 'Pass'
  AND response_time IS NOT NULL
  AND "count" IS NOT NULL`

const exportSummaryQuery = `
SELECT
    script_name,
    transaction_name,
    CAST(SUM("count") AS BIGINT) AS transaction_count,
    CAST(MIN(CASE WHEN status = 'Pass' THEN response_time - COALESCE(think_time, 0) END) AS DOUBLE) AS minimum,
    CAST(MAX(CASE WHEN status = 'Pass' THEN response_time - COALESCE(think_time, 0) END) AS DOUBLE) AS maximum,
    CAST(SUM(CASE WHEN status = 'Pass' THEN "count" ELSE 0 END) AS DOUBLE) AS pass_weight,
    CAST(SUM(CASE WHEN status = 'Pass' THEN (response_time - COALESCE(think_time, 0)) * "count" ELSE 0 END) AS DOUBLE) AS pass_sum,
    CAST(SUM(CASE WHEN status = 'Pass'
                  THEN (response_time - COALESCE(think_time, 0)) * (response_time - COALESCE(think_time, 0)) * "count"
                  ELSE 0 END) AS DOUBLE) AS pass_sum_squares,
    CAST(SUM(CASE WHEN status = 'Pass' THEN "count" ELSE 0 END) AS BIGINT) AS pass,
    CAST(SUM(CASE WHEN status = 'Fail' THEN "count" ELSE 0 END) AS BIGINT) AS fail
FROM %s
GROUP BY script_name, transaction_name
ORDER BY script_name, transaction_name`

// exportRelation returns the DuckDB table function reading path in the given format.
func exportRelation(format, path string) (string, error) {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	switch format {
	case FormatParquet:
		return fmt.Sprintf("read_parquet(%s)", quoted), nil
	case FormatCSV:
		return fmt.Sprintf("read_csv_auto(%s, header=true)", quoted), nil
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
}
