package dataset

import (
	"github.com/vecdb/vecdb-go/pkg/api"
	"github.com/vecdb/vecdb-go/pkg/bulk"
	"github.com/vecdb/vecdb-go/pkg/tracer"
)

// Logger defines the interface for logging operations in the dataset package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=dataset
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Writer is the caller-facing entry point for getting documents into a
// dataset. It owns the glue the lower layers deliberately leave out:
// ensuring the dataset exists, assigning ids, binding a bulk writer to
// the right endpoint, and reporting where to watch the upload.
type Writer struct {
	client     *api.Client
	logger     Logger
	defaults   bulk.Options
	collectors *bulk.Collectors
	tracer     *tracer.Tracer
}

// NewWriter builds a dataset writer on top of the API client.
func NewWriter(client *api.Client, log Logger, defaults bulk.Options) *Writer {
	return &Writer{
		client:   client,
		logger:   log,
		defaults: defaults,
	}
}

// WithCollectors attaches Prometheus instruments to every bulk write.
func (w *Writer) WithCollectors(c *bulk.Collectors) *Writer {
	w.collectors = c
	return w
}

// WithTracer attaches a tracer to every bulk write.
func (w *Writer) WithTracer(t *tracer.Tracer) *Writer {
	w.tracer = t
	return w
}

func (w *Writer) bulkWriter(transport bulk.Transport) *bulk.Writer {
	bw := bulk.NewWriter(transport, w.logger, w.defaults)
	if w.collectors != nil {
		bw = bw.WithCollectors(w.collectors)
	}
	if w.tracer != nil {
		bw = bw.WithTracer(w.tracer)
	}
	return bw
}
