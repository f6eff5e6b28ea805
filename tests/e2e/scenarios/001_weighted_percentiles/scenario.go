package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ### Start - fixed configs (no change)
// These values define deterministic run data and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	samplesPerTransaction = 100 // Passed samples per transaction, response times 1..100 seconds
	thinkTime             = 0.25
	failedPerTransaction  = 5
)

var (
	scripts      = []string{"Login", "Search", "Checkout", "Logout"}
	transactions = []string{"Open", "Submit", "Confirm", "Close"}
	targets      = []float64{50, 90, 95, 99}
	// Response times are 1..100 with unit weights, so the exact percentile of target t is t.
	expectedExact = map[float64]float64{50: 50, 90: 90, 95: 95, 99: 99}
)

// ### End - fixed configs

var lreSchema = []string{
	`CREATE TABLE Script ("Script ID" INTEGER PRIMARY KEY, "Script Name" TEXT)`,
	`CREATE TABLE VuserGroup ("Group ID" INTEGER PRIMARY KEY, "Group Name" TEXT)`,
	`CREATE TABLE Event_map ("Event ID" INTEGER PRIMARY KEY, "Event Name" TEXT, "Event Type" TEXT)`,
	`CREATE TABLE TransactionEndStatus (Status1 INTEGER PRIMARY KEY, "Transaction End Status" TEXT)`,
	`CREATE TABLE Event_meter (
		"Event Name" TEXT, "Script ID" INTEGER, "Group ID" INTEGER, Status1 INTEGER,
		Value REAL, "Think Time" REAL, Acount INTEGER)`,
	`INSERT INTO TransactionEndStatus VALUES (0, 'Pass'), (1, 'Fail')`,
}

type reportRequest struct {
	Strategy    string    `json:"strategy"`
	Percentiles []float64 `json:"percentiles"`
}

type reportToRequest struct {
	key      string
	strategy string
	original bool
}

type percentileValue struct {
	Target float64 `json:"target"`
	Value  float64 `json:"value"`
}

type reportRow struct {
	ScriptName       string            `json:"scriptName"`
	TransactionName  string            `json:"transactionName"`
	TransactionCount int64             `json:"transactionCount"`
	Pass             int64             `json:"pass"`
	Fail             int64             `json:"fail"`
	Percentiles      []percentileValue `json:"percentiles"`
}

type reportJob struct {
	ReportID     string `json:"reportId"`
	Status       string `json:"status"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	Report       *struct {
		Strategy string      `json:"strategy"`
		Rows     []reportRow `json:"rows"`
	} `json:"report"`
}

// main runs the e2e scenario: 001_weighted_percentiles
//
// This scenario writes a deterministic LRE result database into the runs directory,
// requests reports for it through the report API with both strategies, and checks
// the per-transaction percentiles of the finished reports.
//
// What it tests:
//   - Report requests via POST /runs/{runID}/reports
//   - Idempotency key handling for duplicate report requests
//   - Report job production, consumption and storage
//   - Polling via GET /runs/{runID}/reports/{reportID} until the job is done
//   - Listing via GET /runs/{runID}/reports
//
// Expected results:
//   - One report per idempotency key is accepted (202), every duplicate returns 409 Conflict
//   - Each report holds 16 rows (4 scripts x 4 transactions)
//   - Each row counts 105 transactions: 100 passed and 5 failed
//   - Exact percentiles p50, p90, p95 and p99 are 50, 90, 95 and 99 seconds
//   - Digest percentiles are within 2% of the exact values
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"    // Base URL of the lre-analytics API server
	runID := "e2e-001"                    // Run ID, the database is written to <runsDir>/<runID>.db
	runsDir := ".tmp/runs"                // Runs directory relative to project root, must match source.runs_dir
	fileStorageDir := ".tmp/file-storage" // File storage directory relative to project root
	parallel := 4                         // Number of concurrent report requests to send
	duplicatesPerKey := 3                 // Duplicate requests sent for every idempotency key
	pollTimeout := 60 * time.Second       // Maximum time to wait for a report to finish
	wantCleanFileStorage := true          // If true, clean up file storage directory before running scenario

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	runsPath := filepath.Join(projectRoot, runsDir)
	storagePath := filepath.Join(projectRoot, fileStorageDir)

	if wantCleanFileStorage {
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_weighted_percentiles")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("RUN_ID: %s\n", runID)
	fmt.Printf("RUNS_PATH: %s\n", runsPath)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("DUPLICATES_PER_KEY: %d\n", duplicatesPerKey)
	fmt.Println()

	fmt.Printf("Writing run database...\n")
	dbPath, err := writeRunDatabase(runsPath, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write run database: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", dbPath)
	fmt.Println()

	// Idempotency keys are unique per scenario execution so reruns do not hit stored reports.
	suffix := time.Now().UTC().Format("20060102T150405")
	requests := make([]reportToRequest, 0)
	for _, strategy := range []string{"exact", "digest"} {
		key := fmt.Sprintf("e2e-%s-%s", strategy, suffix)
		requests = append(requests, reportToRequest{key: key, strategy: strategy, original: true})
		for i := 0; i < duplicatesPerKey; i++ {
			requests = append(requests, reportToRequest{key: key, strategy: strategy})
		}
	}

	// Originals go first so duplicates always race against an existing job.
	for _, req := range requests {
		if !req.original {
			continue
		}
		status, err := requestReport(baseURL, runID, req)
		if err != nil || status != http.StatusAccepted {
			fmt.Fprintf(os.Stderr, "ERROR: Report %s not accepted (status %d): %v\n", req.key, status, err)
			os.Exit(1)
		}
		fmt.Printf("Report %s accepted\n", req.key)
	}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var conflictedRequest int64 // 409 status code
	var unexpectedRequest int64 // any other status code
	for _, req := range requests {
		if req.original {
			continue
		}
		wg.Add(1)
		workerChan <- struct{}{}

		go func(r reportToRequest) {
			defer wg.Done()
			defer func() { <-workerChan }()

			status, err := requestReport(baseURL, runID, r)
			if err == nil && status == http.StatusConflict {
				atomic.AddInt64(&conflictedRequest, 1)
				return
			}
			atomic.AddInt64(&unexpectedRequest, 1)
			fmt.Fprintf(os.Stderr, "ERROR: Duplicate of %s returned status %d: %v\n", r.key, status, err)
		}(req)
	}
	wg.Wait()
	fmt.Println()

	failures := 0
	for _, req := range requests {
		if !req.original {
			continue
		}
		job, err := pollReport(baseURL, runID, req.key, pollTimeout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			failures++
			continue
		}
		if problems := checkReport(job, req.strategy); len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintf(os.Stderr, "ERROR: report %s: %s\n", req.key, p)
			}
			failures++
			continue
		}
		fmt.Printf("Report %s completed with %d rows\n", req.key, len(job.Report.Rows))
	}

	listed, err := listReports(baseURL, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to list reports: %v\n", err)
		failures++
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("Reports requested: %d\n", len(requests))
	fmt.Printf("Conflicted request: %d\n", atomic.LoadInt64(&conflictedRequest))
	fmt.Printf("Unexpected request: %d\n", atomic.LoadInt64(&unexpectedRequest))
	fmt.Printf("Reports listed for run: %d\n", listed)

	if failures > 0 || atomic.LoadInt64(&unexpectedRequest) > 0 {
		fmt.Fprintf(os.Stderr, "Scenario failed\n")
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod, run from the project root")
}

func writeRunDatabase(runsPath, runID string) (string, error) {
	if err := os.MkdirAll(runsPath, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(runsPath, runID+".db")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return "", err
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	for _, stmt := range lreSchema {
		if _, err := db.Exec(stmt); err != nil {
			return "", err
		}
	}

	tx, err := db.Beginx()
	if err != nil {
		return "", err
	}
	for i, script := range scripts {
		tx.MustExec(`INSERT INTO Script VALUES (?, ?)`, i+1, script+".usr")
		tx.MustExec(`INSERT INTO VuserGroup VALUES (?, ?)`, i+1, script)
	}
	for i, transaction := range transactions {
		tx.MustExec(`INSERT INTO Event_map VALUES (?, ?, 'Transaction')`, i+1, transaction)
	}
	for s := range scripts {
		for _, transaction := range transactions {
			// Samples are written in a scrambled order; 37 is coprime with 100.
			for i := 0; i < samplesPerTransaction; i++ {
				responseTime := float64((i*37)%samplesPerTransaction + 1)
				tx.MustExec(`INSERT INTO Event_meter VALUES (?, ?, ?, 0, ?, ?, 1)`,
					transaction, s+1, s+1, responseTime+thinkTime, thinkTime)
			}
			tx.MustExec(`INSERT INTO Event_meter VALUES (?, ?, ?, 1, 500, 0, ?)`,
				transaction, s+1, s+1, failedPerTransaction)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return path, nil
}

func requestReport(baseURL, runID string, r reportToRequest) (int, error) {
	body, err := json.Marshal(reportRequest{Strategy: r.strategy, Percentiles: targets})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/runs/"+runID+"/reports", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("idempotency-key", r.key)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func pollReport(baseURL, runID, reportID string, timeout time.Duration) (*reportJob, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/runs/" + runID + "/reports/" + reportID)
		if err != nil {
			return nil, fmt.Errorf("failed to get report %s: %w", reportID, err)
		}
		var job reportJob
		err = json.NewDecoder(resp.Body).Decode(&job)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", reportID, err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return &job, nil
		case http.StatusAccepted:
			time.Sleep(200 * time.Millisecond)
		default:
			return nil, fmt.Errorf("report %s returned status %d", reportID, resp.StatusCode)
		}
	}
	return nil, fmt.Errorf("report %s not done after %s", reportID, timeout)
}

func listReports(baseURL, runID string) (int, error) {
	resp, err := http.Get(baseURL + "/runs/" + runID + "/reports")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status %d", resp.StatusCode)
	}
	var listed struct {
		Reports []json.RawMessage `json:"reports"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		return 0, err
	}
	return len(listed.Reports), nil
}

func checkReport(job *reportJob, strategy string) []string {
	if job.Status != "completed" || job.Report == nil {
		return []string{fmt.Sprintf("status %s (%s: %s)", job.Status, job.ErrorCode, job.ErrorMessage)}
	}

	var problems []string
	if job.Report.Strategy != strategy {
		problems = append(problems, fmt.Sprintf("strategy %s, want %s", job.Report.Strategy, strategy))
	}
	if want := len(scripts) * len(transactions); len(job.Report.Rows) != want {
		problems = append(problems, fmt.Sprintf("%d rows, want %d", len(job.Report.Rows), want))
	}

	tolerance := 1e-9
	if strategy == "digest" {
		tolerance = 0.02
	}
	for _, row := range job.Report.Rows {
		name := row.ScriptName + "/" + row.TransactionName
		if row.Pass != samplesPerTransaction || row.Fail != failedPerTransaction {
			problems = append(problems, fmt.Sprintf("%s: pass %d fail %d", name, row.Pass, row.Fail))
		}
		if row.TransactionCount != samplesPerTransaction+failedPerTransaction {
			problems = append(problems, fmt.Sprintf("%s: count %d", name, row.TransactionCount))
		}
		for _, p := range row.Percentiles {
			want := expectedExact[p.Target]
			if math.Abs(p.Value-want) > want*tolerance {
				problems = append(problems, fmt.Sprintf("%s: p%g = %g, want %g", name, p.Target, p.Value, want))
			}
		}
	}
	return problems
}
