package configs

import (
	"fmt"
	"strings"

	"lre-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LRE_ANALYTICS_ANALYTICS_STRATEGY=digest.
const EnvPrefix = "LRE_ANALYTICS"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.shutdown_timeout", 30)
	v.SetDefault("log.level", "info")

	v.SetDefault("source.driver", "sqlite")
	v.SetDefault("source.runs_dir", "./runs")

	v.SetDefault("analytics.batch_size", 50_000)
	v.SetDefault("analytics.strategy", "exact")
	v.SetDefault("analytics.percentiles", []float64{50, 90, 95, 99})
	v.SetDefault("analytics.exact_min_samples", 2)
	v.SetDefault("analytics.digest.kind", "tdigest")
	v.SetDefault("analytics.digest.compression", 100)
	v.SetDefault("analytics.digest.relative_accuracy", 0.01)
	v.SetDefault("analytics.digest.significant_figures", 3)
	v.SetDefault("analytics.digest.hdr_scale", 1000)
	v.SetDefault("analytics.digest.hdr_max", int64(3_600_000_000))

	v.SetDefault("report_cache.ttl_seconds", 600)
	v.SetDefault("report_cache.capacity", 1024)

	v.SetDefault("queue.partitions", 8)
	v.SetDefault("queue.buffer", 1024)
}

// LoadConfig reads configuration from file, applies defaults and environment overrides, and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "Config.Analytics.Digest.Kind" -> "analytics.digest.kind")
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min", "max", "gt", "lt", "lte", "oneof":
		msg = fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
