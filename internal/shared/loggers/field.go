package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"

	FieldRunID       = "run_id"
	FieldReportID    = "report_id"
	FieldStrategy    = "strategy"
	FieldScript      = "script"
	FieldTransaction = "transaction"
	FieldBatches     = "batches"
	FieldGroups      = "groups"
	FieldRows        = "rows"
	FieldBatchSize   = "batch_size"
)
