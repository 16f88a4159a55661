package appconfig

import (
	"time"

	"github.com/peoplelens/attritiond/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the address the dashboard API listens on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9030"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is an optional path of a rotated JSON log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// DatasetURI locates the employee table. Either a local path, a file:// URI,
	// or an s3://bucket/key URI.
	DatasetURI DatasetLocation `required:"true" split_words:"true" default:"EA.csv"`

	// DatasetDelimiter is the field separator of the employee table.
	DatasetDelimiter Delimiter `split_words:"true" default:","`

	// DatasetS3Region is the region used when DatasetURI points to S3. Falls back to
	// the default AWS credential chain region when empty.
	DatasetS3Region string `split_words:"true"`

	// DatasetS3AccessKeyID and DatasetS3SecretAccessKey configure static credentials for S3.
	// When left empty, the default AWS credential chain is used.
	DatasetS3AccessKeyID     string `split_words:"true"`
	DatasetS3SecretAccessKey string `split_words:"true"`

	// DatasetLoadRetries is the number of attempts made to fetch a remote dataset.
	DatasetLoadRetries uint `split_words:"true" default:"3"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"jaeger"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// DatadogProfilerEnabled to indicate whether to enable Datadog profiler.
	DatadogProfilerEnabled bool `split_words:"true" default:"false"`

	// DatadogProfilerAgentAddress is the address of the Datadog profiler agent.
	DatadogProfilerAgentAddress string `split_words:"true" default:"localhost:8126"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// RateLimitPerMinute caps requests per client IP on the API. Zero disables the limiter.
	RateLimitPerMinute int `split_words:"true" default:"600"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}

// DatasetLoadTimeout bounds the startup phase, which includes the initial dataset load.
func (c *Config) DatasetLoadTimeout() time.Duration {
	if c.DatasetURI.Scheme == SchemeS3 {
		return time.Minute
	}
	return 15 * time.Second
}
