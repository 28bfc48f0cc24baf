package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/defaults"
	"github.com/reqforge/reqforge/pkg/encoding"
	"github.com/reqforge/reqforge/pkg/metrics"
	"github.com/reqforge/reqforge/pkg/mutant"
	"github.com/reqforge/reqforge/pkg/telemetry"
	"github.com/reqforge/reqforge/pkg/ui"
	"go.opentelemetry.io/otel/attribute"
)

// mutateOptions holds the parsed mutate flags.
type mutateOptions struct {
	requestFile  string
	payloads     config.StringSliceFlag
	payloadFile  string
	encoders     config.StringSliceFlag
	configFile   string
	appendMode   bool
	indexes      config.IntSliceFlag
	format       string
	dedup        bool
	raw          bool
	concurrency  int
	metricsFile  string
	otelEndpoint string
	otelInsecure bool
	verbose      bool
	noColor      bool
	overrides    *config.Overrides
}

func parseMutateFlags(args []string, stdout, stderr io.Writer) (*mutateOptions, error) {
	opts := &mutateOptions{}
	fs := flag.NewFlagSet("mutate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Input
	fs.StringVar(&opts.requestFile, "r", "", "Raw HTTP request file ('-' for stdin)")
	fs.Var(&opts.payloads, "payload", "Payload to inject (comma-separated, repeatable)")
	fs.StringVar(&opts.payloadFile, "payload-file", "", "File with one payload per line")
	fs.Var(&opts.encoders, "encoder", "Pre-encode payloads with these encoders, in order ("+strings.Join(encoding.Names(), ", ")+")")

	// Generation
	fs.StringVar(&opts.configFile, "config", "", "YAML fuzzer config file")
	fs.BoolVar(&opts.appendMode, "append", false, "Append payloads to original values instead of replacing them")
	fs.Var(&opts.indexes, "index", "Only mutate injection points with these indexes (comma-separated)")
	fs.IntVar(&opts.concurrency, "c", 0, "Factory concurrency (0 keeps the config value)")
	opts.overrides = config.BindFlags(fs)

	// Output
	fs.StringVar(&opts.format, "format", "", "Output format: console, json, jsonl (default console on a terminal, jsonl otherwise)")
	fs.BoolVar(&opts.dedup, "dedup", false, "Drop mutants that render to an identical request")
	fs.BoolVar(&opts.raw, "raw", false, "Include the raw rendered request in JSON output")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")

	// Observability
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
	fs.StringVar(&opts.otelEndpoint, "otel-endpoint", "", "Export traces to this OTLP/gRPC endpoint")
	fs.BoolVar(&opts.otelInsecure, "otel-insecure", false, "Disable TLS for the OTLP connection")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.format == "" {
		opts.format = defaultFormat(stdout)
	}
	if !validFormat(opts.format) {
		return nil, fmt.Errorf("%w: unsupported format %q", errUsage, opts.format)
	}
	if opts.concurrency < 0 {
		return nil, fmt.Errorf("%w: -c must be >= 0", errUsage)
	}
	return opts, nil
}

// defaultFormat picks console output for a terminal and JSON Lines for
// anything else.
func defaultFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok {
		return ui.DefaultFormat(f, defaults.FormatConsole, defaults.FormatJSONL)
	}
	return defaults.FormatJSONL
}

// loadConfig reads the config file when given, then applies flag overrides.
func (o *mutateOptions) loadConfig() (*config.FuzzerConfig, error) {
	cfg := config.Defaults()
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		cfg = loaded
	}
	o.overrides.Apply(cfg)
	if o.concurrency > 0 {
		cfg.Concurrency = o.concurrency
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	return cfg, nil
}

func (o *mutateOptions) loadPayloads() ([]string, error) {
	payloads := append([]string(nil), o.payloads...)
	if o.payloadFile != "" {
		more, err := readPayloadFile(o.payloadFile)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, more...)
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: at least one -payload or -payload-file entry is required", errUsage)
	}
	if len(o.encoders) == 0 {
		return payloads, nil
	}

	enc, err := encoding.Compose(o.encoders...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v (available: %s)", errUsage, err, strings.Join(encoding.Names(), ", "))
	}
	for i, p := range payloads {
		payloads[i] = enc.Encode(p)
	}
	return payloads, nil
}

// mutateReport is the JSON document written by -format json.
type mutateReport struct {
	RunID   string          `json:"run_id"`
	Target  string          `json:"target"`
	Method  string          `json:"method"`
	Count   int             `json:"count"`
	ByKind  map[string]int  `json:"by_kind"`
	Mutants []mutant.Record `json:"mutants"`
}

func runMutate(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseMutateFlags(args, stdout, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return defaults.ExitSuccess
		}
		if errors.Is(err, errUsage) {
			return exitCode(stderr, err)
		}
		return defaults.ExitUserError
	}
	if opts.noColor {
		ui.SetNoColor(true)
	}

	runID := uuid.New().String()
	log := newLogger(stderr, opts.verbose, runID)

	if opts.otelEndpoint != "" {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint: opts.otelEndpoint,
			Insecure: opts.otelInsecure,
			RunID:    runID,
		})
		if err != nil {
			return exitCode(stderr, err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn("trace export failed", "error", err)
			}
		}()
	}

	collector := metrics.New()
	if opts.metricsFile != "" {
		defer func() {
			if err := collector.WriteTextfile(opts.metricsFile); err != nil {
				log.Warn("writing metrics failed", "path", opts.metricsFile, "error", err)
			}
		}()
	}

	return exitCode(stderr, mutate(ctx, opts, runID, collector, log, stdout))
}

func mutate(ctx context.Context, opts *mutateOptions, runID string, collector *metrics.Collector, log *slog.Logger, stdout io.Writer) error {
	ctx, span := telemetry.Tracer().Start(ctx, "mutate")
	defer span.End()
	span.SetAttributes(attribute.String("run_id", runID))

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	payloads, err := opts.loadPayloads()
	if err != nil {
		return err
	}

	req, err := readRequest(opts.requestFile, os.Stdin)
	if !errors.Is(err, errUsage) {
		collector.ObserveParse(err)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}
	log.Debug("request parsed", "target", req.TargetURI(), "kind", req.Kind().String(), "headers", req.Header().Len())

	start := time.Now()
	mutants, err := mutant.Generate(ctx, req, payloads, mutant.Options{
		Config:  cfg,
		Indexes: opts.indexes,
		Append:  opts.appendMode,
		Logger:  log,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}
	collector.ObserveGenerate(mutants, time.Since(start))
	telemetry.Elapsed(span, start)

	if opts.dedup {
		before := len(mutants)
		mutants = mutant.Dedup(mutants)
		log.Debug("deduplicated mutants", "dropped", before-len(mutants))
	}
	if len(mutants) == 0 {
		log.Warn("no mutants generated; check that a mutant kind is enabled and applies to the request")
	}
	span.SetAttributes(attribute.Int("mutants", len(mutants)))

	return writeMutants(stdout, opts, runID, req.TargetURI(), req.Method(), mutants)
}
