package models

// SummaryRow is one pre-aggregated row of the summary statistics provider.
//
// Example JSON:
//
//	{
//	  "scriptName": "Login",
//	  "transactionName": "Submit",
//	  "transactionCount": 1500,
//	  "minimum": 0.121,
//	  "average": 0.342,
//	  "maximum": 2.804,
//	  "stdDeviation": 0.211,
//	  "pass": 1480,
//	  "fail": 20
//	}
type SummaryRow struct {
	GroupKey
	TransactionCount int64   `json:"transactionCount"`
	Minimum          float64 `json:"minimum"`
	Average          float64 `json:"average"`
	Maximum          float64 `json:"maximum"`
	StdDeviation     float64 `json:"stdDeviation"`
	Pass             int64   `json:"pass"`
	Fail             int64   `json:"fail"`
}
