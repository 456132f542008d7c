package report

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/studentreport/internal/model"
)

// DefaultConcurrency is the number of reports built at once when no
// concurrency is configured.
const DefaultConcurrency = 4

// BatchResult is the outcome of building one student's report.
type BatchResult struct {
	// StudentID is the requested student.
	StudentID string

	// Report is the computed report, or nil when Err is set.
	Report *model.Report

	// Err is the failure for this student, if any.
	Err error
}

// BatchGenerator builds reports for many students concurrently.
// A failure for one student is recorded on its result and does not stop
// the others.
type BatchGenerator struct {
	generator   *Generator
	concurrency int
	logger      *slog.Logger

	// results is guarded by mu while a batch is running.
	results []BatchResult
	mu      sync.Mutex
}

// BatchOption configures a BatchGenerator.
type BatchOption func(*BatchGenerator)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchGenerator) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of reports built at once.
// Values below 1 are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchGenerator) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchGenerator creates a BatchGenerator around generator.
func NewBatchGenerator(generator *Generator, opts ...BatchOption) *BatchGenerator {
	b := &BatchGenerator{
		generator:   generator,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Process builds the report of the given kind for every student id.
// Results are returned in the order of studentIDs. The returned error is
// non-nil only when ctx is cancelled; students not reached by then carry
// the context error.
func (b *BatchGenerator) Process(ctx context.Context, studentIDs []string, kind model.ReportKind) ([]BatchResult, error) {
	b.logger.Info("starting batch report generation",
		"students", len(studentIDs),
		"kind", kind,
		"concurrency", b.concurrency,
	)
	start := time.Now()

	b.mu.Lock()
	b.results = make([]BatchResult, len(studentIDs))
	b.mu.Unlock()

	err := b.run(ctx, studentIDs, kind, func(res BatchResult, i int) {
		b.mu.Lock()
		b.results[i] = res
		b.mu.Unlock()
	})

	b.logger.Info("batch report generation complete",
		"students", len(studentIDs),
		"elapsed", time.Since(start),
	)

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.results, err
}

// ProcessWithCallback builds reports and calls callback as each one
// finishes, with the index of the student in studentIDs. The callback runs
// on the worker goroutine and must be safe for concurrent use.
func (b *BatchGenerator) ProcessWithCallback(
	ctx context.Context,
	studentIDs []string,
	kind model.ReportKind,
	callback func(result BatchResult, index int),
) error {
	return b.run(ctx, studentIDs, kind, callback)
}

func (b *BatchGenerator) run(
	ctx context.Context,
	studentIDs []string,
	kind model.ReportKind,
	done func(result BatchResult, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, id := range studentIDs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				done(BatchResult{StudentID: id, Err: ctx.Err()}, i)
				return ctx.Err()
			default:
			}

			r, err := b.generator.Build(id, kind)
			if err != nil {
				b.logger.Warn("report failed", "student", id, "error", err)
				// Recorded on the result so the other students continue.
				done(BatchResult{StudentID: id, Err: err}, i)
				return nil
			}

			b.logger.Debug("report built", "student", id)
			done(BatchResult{StudentID: id, Report: r}, i)
			return nil
		})
	}

	return g.Wait()
}
