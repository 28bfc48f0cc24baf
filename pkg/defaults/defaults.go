// Package defaults provides canonical default values shared by the CLI and
// the library packages.
//
// Usage:
//
//	cfg.Concurrency = defaults.Concurrency
//	ctx, cancel := context.WithTimeout(ctx, defaults.TelemetryShutdown)
package defaults

import "time"

// ToolName is the binary and telemetry service name.
const ToolName = "reqforge"

// Version is the current reqforge version.
const Version = "0.3.0"

// ============================================================================
// GENERATION
// ============================================================================

const (
	// Concurrency is the factory worker bound used when neither the config
	// file nor a flag sets one (4)
	Concurrency = 4

	// DoubleEncodeSafeChars are left literal by the double-encoded
	// filename variant
	DoubleEncodeSafeChars = "/"
)

// ============================================================================
// TELEMETRY
// ============================================================================

const (
	// OTelEndpoint is the default OTLP/gRPC collector address
	OTelEndpoint = "localhost:4317"

	// TelemetryConnect bounds exporter setup
	TelemetryConnect = 10 * time.Second

	// TelemetryShutdown bounds the final span flush
	TelemetryShutdown = 5 * time.Second
)

// ============================================================================
// OUTPUT FORMATS
// ============================================================================

const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
)

// Formats lists every accepted -format value.
var Formats = []string{FormatConsole, FormatJSON, FormatJSONL}
