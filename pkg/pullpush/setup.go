package pullpush

import (
	"github.com/vecdb/vecdb-go/pkg/api"
	"github.com/vecdb/vecdb-go/pkg/bulk"
	"github.com/vecdb/vecdb-go/pkg/document"
	"github.com/vecdb/vecdb-go/pkg/tracer"
)

// Logger defines the interface for logging operations in the pullpush package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=pullpush
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// UpdateFunc transforms one retrieved page of documents before they are
// written back. Returning an error aborts the whole run; the runner
// never retries or swallows transform failures, since a buggy transform
// applied to the full dataset is worse than a stopped run.
type UpdateFunc func(docs []document.Document) ([]document.Document, error)

// Options tunes one Run call.
type Options struct {
	// RetrieveChunkSize is the page size used when pulling documents.
	// Zero uses DefaultRetrieveChunkSize.
	RetrieveChunkSize int

	// Filters narrows the run to documents matching these predicates.
	Filters []api.Filter

	// SelectFields pulls only the named fields, which keeps pages small
	// when the transform touches a known subset.
	SelectFields []string

	// IncludeVector pulls stored vectors along with each document.
	IncludeVector bool

	// UpdatedDatasetID writes transformed documents into a different
	// dataset instead of updating the source in place.
	UpdatedDatasetID string

	// CheckpointPath overrides where processed ids are recorded. Empty
	// derives a path from the dataset id in the working directory.
	CheckpointPath string

	// Bulk overrides the runner's default chunk/retry options. Nil uses
	// the defaults.
	Bulk *bulk.Options
}

// Report is the aggregate outcome of a Run.
type Report struct {
	// Retrieved counts documents pulled from the source dataset,
	// including ones skipped via the checkpoint.
	Retrieved int

	// Skipped counts documents the checkpoint marked as already done.
	Skipped int

	// Written counts documents the service accepted.
	Written int

	// FailedDocuments lists ids that could not be written back.
	FailedDocuments []string

	// FailedDocumentsDetailed carries the service's failure details.
	FailedDocumentsDetailed []bulk.FailedDocument
}

// Runner pulls documents out of a dataset page by page, applies a
// transform, and pushes the results back through the bulk writer,
// checkpointing progress so an interrupted run resumes where it stopped.
type Runner struct {
	client     *api.Client
	logger     Logger
	defaults   bulk.Options
	collectors *bulk.Collectors
	tracer     *tracer.Tracer
}

// NewRunner builds a runner on top of the API client.
func NewRunner(client *api.Client, log Logger, defaults bulk.Options) *Runner {
	return &Runner{
		client:   client,
		logger:   log,
		defaults: defaults,
	}
}

// WithCollectors attaches Prometheus instruments to the push side.
func (r *Runner) WithCollectors(c *bulk.Collectors) *Runner {
	r.collectors = c
	return r
}

// WithTracer attaches a tracer to the push side.
func (r *Runner) WithTracer(t *tracer.Tracer) *Runner {
	r.tracer = t
	return r
}
