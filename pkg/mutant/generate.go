package mutant

import (
	"context"
	"log/slog"
	"sync"

	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/httpreq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/reqforge/reqforge/pkg/mutant"

// Options configures Generate.
type Options struct {
	Config  *config.FuzzerConfig
	Indexes []int
	Append  bool

	// Logger receives per-kind debug records. Nil uses slog.Default().
	Logger *slog.Logger
}

// Generate runs every registered factory against req.
//
// Factories run concurrently, bounded by Config.Concurrency, each on its own
// deep copy of req. The result is the concatenation of each factory's
// output in registration order, identical to a sequential run.
func (r *Registry) Generate(ctx context.Context, req httpreq.Capabilities, payloads []string, opts Options) ([]*Mutant, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "mutant.Generate")
	defer span.End()

	log := orDefault(opts.Logger)
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	workers := cfg.Concurrency
	if workers <= 0 {
		workers = 1
	}

	factories := r.All()
	results := make([][]*Mutant, len(factories))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, f := range factories {
		wg.Add(1)
		go func(i int, f Factory) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			results[i] = f.Create(req.Copy(), payloads, opts.Indexes, opts.Append, cfg)
			log.Debug("mutants created", "kind", f.Kind().Slug(), "count", len(results[i]))
		}(i, f)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var out []*Mutant
	for i, res := range results {
		span.SetAttributes(attribute.Int("mutants."+factories[i].Kind().Slug(), len(res)))
		out = append(out, res...)
	}
	span.SetAttributes(
		attribute.Int("payloads", len(payloads)),
		attribute.Int("mutants.total", len(out)),
	)
	return out, nil
}

// orDefault returns l if non-nil, otherwise slog.Default().
func orDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}

// Generate runs the DefaultRegistry factories.
func Generate(ctx context.Context, req httpreq.Capabilities, payloads []string, opts Options) ([]*Mutant, error) {
	return DefaultRegistry.Generate(ctx, req, payloads, opts)
}

// CountByKind tallies mutants per kind.
func CountByKind(mutants []*Mutant) map[Kind]int {
	counts := make(map[Kind]int)
	for _, m := range mutants {
		counts[m.Kind()]++
	}
	return counts
}

// Dedup drops mutants whose rendered request matches an earlier one,
// keeping first occurrences in order.
func Dedup(mutants []*Mutant) []*Mutant {
	seen := make(map[uint64]struct{}, len(mutants))
	out := make([]*Mutant, 0, len(mutants))
	for _, m := range mutants {
		fp := m.Fingerprint()
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, m)
	}
	return out
}
