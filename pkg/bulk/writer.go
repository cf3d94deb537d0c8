package bulk

import (
	"context"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/vecdb/vecdb-go/pkg/config"
	"github.com/vecdb/vecdb-go/pkg/document"
	"github.com/vecdb/vecdb-go/pkg/tracer"
)

// Options tunes a single Write call. Build it with DefaultOptions (or
// Writer.Options) and override what you need.
//
// MaxRetries is the total number of write passes, including the first;
// zero performs no passes at all and reports every document failed.
type Options struct {
	// MaxWorkers bounds how many chunk writes run concurrently.
	MaxWorkers int

	// RetryChunkMultiplier shrinks the chunk size when the service
	// signals overload. Must be in (0, 1); invalid values fall back to
	// the configured default.
	RetryChunkMultiplier float64

	// MaxRetries bounds the retry loop. Negative means "use default".
	MaxRetries int

	// ChunkSize forces a fixed chunk size; zero enables the size probe.
	ChunkSize int

	// BackoffInterval is slept between passes while documents remain.
	BackoffInterval time.Duration

	// TargetChunkMB and MinChunkSize bound the size probe.
	TargetChunkMB int
	MinChunkSize  int
}

// DefaultOptions derives write options from the SDK configuration.
func DefaultOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:           cfg.Upload.MaxWorkers,
		RetryChunkMultiplier: cfg.Upload.RetryChunkMultiplier,
		MaxRetries:           cfg.Retries.NumberOfRetries,
		ChunkSize:            0,
		BackoffInterval:      time.Duration(cfg.Retries.SecondsBetweenRetries) * time.Second,
		TargetChunkMB:        cfg.Upload.TargetChunkMB,
		MinChunkSize:         cfg.Upload.MinChunkSize,
	}
}

// Outcome is the aggregate result of a Write call. Inserted documents,
// Failed ids and Cancelled ids are disjoint and together cover the input
// id set exactly once.
type Outcome struct {
	// Inserted is the total number of documents the service accepted.
	Inserted int

	// Failed lists ids that still failed once retries were exhausted.
	Failed []string

	// FailedDetailed carries the per-document failure details the
	// service reported on the final pass.
	FailedDetailed []FailedDocument

	// Cancelled lists ids given up on after a non-retryable error.
	Cancelled []string

	// CancelledDetailed records why each cancelled id was given up on.
	CancelledDetailed []FailedDocument
}

// Result is the caller-facing response shape. Cancelled ids are folded
// into FailedDocuments so callers see every unwritten document in one
// list, matching the service's own bulk responses.
type Result struct {
	Inserted                int              `json:"inserted"`
	FailedDocuments         []string         `json:"failed_documents"`
	FailedDocumentsDetailed []FailedDocument `json:"failed_documents_detailed"`
}

// Result flattens the outcome into the caller-facing shape.
func (o Outcome) Result() Result {
	failed := make([]string, 0, len(o.Failed)+len(o.Cancelled))
	failed = append(failed, o.Failed...)
	failed = append(failed, o.Cancelled...)

	detailed := make([]FailedDocument, 0, len(o.FailedDetailed)+len(o.CancelledDetailed))
	detailed = append(detailed, o.FailedDetailed...)
	detailed = append(detailed, o.CancelledDetailed...)

	return Result{
		Inserted:                o.Inserted,
		FailedDocuments:         failed,
		FailedDocumentsDetailed: detailed,
	}
}

// Writer owns the chunk/retry/backoff state machine for pushing a list
// of documents through a Transport. It is stateless across Write calls
// and safe for concurrent use.
type Writer struct {
	transport  Transport
	logger     Logger
	collectors *Collectors
	tracer     *tracer.Tracer
	defaults   Options
}

// NewWriter builds a writer around the given transport. Collectors and
// tracer are attached via WithCollectors / WithTracer.
func NewWriter(transport Transport, log Logger, defaults Options) *Writer {
	return &Writer{
		transport: transport,
		logger:    log,
		defaults:  defaults,
	}
}

// WithCollectors attaches Prometheus instruments to the writer.
func (w *Writer) WithCollectors(c *Collectors) *Writer {
	w.collectors = c
	return w
}

// WithTracer attaches a tracer; each Write call then runs inside a span.
func (w *Writer) WithTracer(t *tracer.Tracer) *Writer {
	w.tracer = t
	return w
}

// Options returns a copy of the writer's default options.
func (w *Writer) Options() Options {
	return w.defaults
}

// Write pushes documents through the transport in concurrently-dispatched
// chunks, retrying failures until MaxRetries passes are spent.
//
// Preconditions: every document carries a unique string _id (see
// document.EnsureIDs). Empty input returns a zero Outcome without any
// transport call.
//
// Partial failures are reported in the Outcome, never as an error. The
// only error Write returns is the context's, when the caller cancels
// between passes.
func (w *Writer) Write(ctx context.Context, docs []document.Document, opts Options) (Outcome, error) {
	opts = w.normalize(opts)

	if len(docs) == 0 {
		w.logger.Warn("No documents to write", nil, nil)
		return Outcome{}, nil
	}

	if w.tracer != nil {
		var span traceSpan.Span
		ctx, span = w.tracer.StartSpan(ctx, "bulk.write")
		defer span.End()
		w.tracer.SetAttributes(span, map[string]interface{}{
			"bulk.documents": len(docs),
		})
	}

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = initialChunkSize(docs, opts.TargetChunkMB, opts.MinChunkSize)
	}

	remaining := docs
	var (
		outcome        Outcome
		failedDetailed []FailedDocument
		ctxErr         error
	)

	for pass := 0; pass < opts.MaxRetries && len(remaining) > 0; pass++ {
		if pass > 0 {
			if err := sleepBackoff(ctx, opts.BackoffInterval); err != nil {
				ctxErr = err
				break
			}
		}

		w.logger.Info("Dispatching write pass", nil, map[string]interface{}{
			"pass":       pass + 1,
			"documents":  len(remaining),
			"chunk_size": chunkSize,
		})
		if w.collectors != nil {
			w.collectors.RetryPasses.Inc()
			w.collectors.ChunkSize.Set(float64(chunkSize))
		}

		results := w.dispatch(ctx, remaining, chunkSize, opts.MaxWorkers)

		retryIDs := make(map[string]bool)
		var passDetailed []FailedDocument

		for _, res := range results {
			switch res.Response.Status {
			case StatusSuccess:
				outcome.Inserted += res.Response.Written
				for _, fd := range res.Response.FailedDocuments {
					retryIDs[fd.ID] = true
					passDetailed = append(passDetailed, fd)
				}

			case StatusGiveUp:
				for _, doc := range res.Documents {
					outcome.Cancelled = append(outcome.Cancelled, doc.ID())
					outcome.CancelledDetailed = append(outcome.CancelledDetailed, FailedDocument{
						ID:     doc.ID(),
						Detail: res.Response.Detail,
					})
				}

			case StatusOverload:
				for _, doc := range res.Documents {
					retryIDs[doc.ID()] = true
				}
				chunkSize = shrinkChunkSize(chunkSize, opts.RetryChunkMultiplier)

			default:
				for _, doc := range res.Documents {
					retryIDs[doc.ID()] = true
				}
			}
		}

		// Rebuild the remaining set from the current one so the original
		// relative order survives across passes.
		next := make([]document.Document, 0, len(retryIDs))
		for _, doc := range remaining {
			if retryIDs[doc.ID()] {
				next = append(next, doc)
			}
		}
		remaining = next
		failedDetailed = passDetailed

		if len(remaining) > 0 {
			w.logger.Warn("Documents failed to upload, retrying", nil, map[string]interface{}{
				"failed":     len(remaining),
				"chunk_size": chunkSize,
			})
		}
	}

	outcome.Failed = document.IDs(remaining)
	outcome.FailedDetailed = failedDetailed

	if w.collectors != nil {
		w.collectors.DocumentsWritten.Add(float64(outcome.Inserted))
		w.collectors.DocumentsFailed.Add(float64(len(outcome.Failed)))
		w.collectors.DocumentsCancelled.Add(float64(len(outcome.Cancelled)))
	}

	w.logger.Info("Bulk write finished", nil, map[string]interface{}{
		"inserted":  outcome.Inserted,
		"failed":    len(outcome.Failed),
		"cancelled": len(outcome.Cancelled),
	})

	return outcome, ctxErr
}

// dispatch runs one pass: partition the remaining documents and write
// every chunk concurrently, collecting one result per chunk.
func (w *Writer) dispatch(ctx context.Context, docs []document.Document, chunkSize, maxWorkers int) []ChunkResult {
	chunks := partition(docs, chunkSize)

	tasks := make([]func(context.Context) ChunkResult, len(chunks))
	for i, chunk := range chunks {
		tasks[i] = func(tctx context.Context) ChunkResult {
			return w.writeChunk(tctx, chunk)
		}
	}
	return runConcurrently(ctx, tasks, maxWorkers)
}

// writeChunk performs one transport call, folding transport errors into a
// transient result so they never escape the retry loop.
func (w *Writer) writeChunk(ctx context.Context, chunk []document.Document) ChunkResult {
	resp, err := w.transport.WriteChunk(ctx, chunk)
	if err != nil {
		w.logger.Warn("Chunk write failed, will retry", err, map[string]interface{}{
			"documents": len(chunk),
		})
		return ChunkResult{
			Response:  ChunkResponse{Status: StatusTransient, Detail: err.Error()},
			Documents: chunk,
		}
	}
	return ChunkResult{Response: resp, Documents: chunk}
}

func (w *Writer) normalize(opts Options) Options {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = w.defaults.MaxWorkers
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = config.DefaultMaxWorkers
	}
	if opts.RetryChunkMultiplier <= 0 || opts.RetryChunkMultiplier >= 1 {
		opts.RetryChunkMultiplier = w.defaults.RetryChunkMultiplier
	}
	if opts.RetryChunkMultiplier <= 0 || opts.RetryChunkMultiplier >= 1 {
		opts.RetryChunkMultiplier = config.DefaultRetryChunkMultiplier
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = w.defaults.MaxRetries
	}
	if opts.TargetChunkMB <= 0 {
		opts.TargetChunkMB = w.defaults.TargetChunkMB
	}
	if opts.TargetChunkMB <= 0 {
		opts.TargetChunkMB = config.DefaultTargetChunkMB
	}
	if opts.MinChunkSize <= 0 {
		opts.MinChunkSize = w.defaults.MinChunkSize
	}
	if opts.MinChunkSize <= 0 {
		opts.MinChunkSize = 1
	}
	if opts.BackoffInterval < 0 {
		opts.BackoffInterval = 0
	}
	return opts
}

// sleepBackoff blocks for the configured interval or until the context
// is cancelled, whichever comes first.
func sleepBackoff(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
