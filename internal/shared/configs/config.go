package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Source      SourceConfig      `mapstructure:"source" validate:"required"`
	Analytics   AnalyticsConfig   `mapstructure:"analytics" validate:"required"`
	ReportCache ReportCacheConfig `mapstructure:"report_cache"`
	Queue       QueueConfig       `mapstructure:"queue"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	ShutdownTimeout   int `mapstructure:"shutdown_timeout" validate:"min=1"`             // seconds
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// SourceConfig selects where run results are read from.
type SourceConfig struct {
	Driver     string `mapstructure:"driver" validate:"required,oneof=sqlite duckdb"`
	RunsDir    string `mapstructure:"runs_dir" validate:"required"`
	FileFormat string `mapstructure:"file_format" validate:"required_if=Driver duckdb,omitempty,oneof=parquet csv"`
}

// AnalyticsConfig holds the defaults of every analytics run.
type AnalyticsConfig struct {
	BatchSize       int          `mapstructure:"batch_size" validate:"min=1,max=1000000"`
	Strategy        string       `mapstructure:"strategy" validate:"oneof=exact digest"`
	Percentiles     []float64    `mapstructure:"percentiles" validate:"min=1,max=32,dive,gte=0,lte=100"`
	ExactMinSamples int          `mapstructure:"exact_min_samples" validate:"min=1"`
	Digest          DigestConfig `mapstructure:"digest"`
}

// DigestConfig holds the sketch settings used by the digest strategy.
type DigestConfig struct {
	Kind               string  `mapstructure:"kind" validate:"oneof=tdigest ddsketch hdr"`
	Compression        float64 `mapstructure:"compression" validate:"gt=0"`
	RelativeAccuracy   float64 `mapstructure:"relative_accuracy" validate:"gt=0,lt=1"`
	SignificantFigures int     `mapstructure:"significant_figures" validate:"min=1,max=5"`
	HDRScale           float64 `mapstructure:"hdr_scale" validate:"gt=0"`
	HDRMax             int64   `mapstructure:"hdr_max" validate:"min=1"`
}

// ReportCacheConfig bounds the in-process cache in front of stored reports.
type ReportCacheConfig struct {
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"min=1"`
	Capacity   uint64 `mapstructure:"capacity"`
}

// QueueConfig sizes the report job queue.
type QueueConfig struct {
	Partitions int `mapstructure:"partitions" validate:"min=1,max=256"`
	Buffer     int `mapstructure:"buffer" validate:"min=0"`
}
