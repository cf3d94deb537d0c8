package dataset

import (
	"context"
	"fmt"

	"github.com/vecdb/vecdb-go/pkg/api"
	"github.com/vecdb/vecdb-go/pkg/bulk"
	"github.com/vecdb/vecdb-go/pkg/document"
)

// WriteOptions tunes one InsertDocuments or UpdateDocuments call.
type WriteOptions struct {
	// CreateID assigns a generated id to documents missing one. Without
	// it, a missing id is an error: silently generated ids would turn an
	// intended update into a duplicate insert.
	CreateID bool

	// Bulk overrides the writer's default chunk/retry options for this
	// call. Nil uses the defaults.
	Bulk *bulk.Options
}

// InsertDocuments writes documents into a dataset, creating the dataset
// first (the create endpoint is idempotent, so this is safe to repeat).
//
// Partial failures come back inside the Result, not as an error; the
// error return covers context cancellation and precondition failures
// such as missing ids.
func (w *Writer) InsertDocuments(ctx context.Context, datasetID string, docs []document.Document, opts WriteOptions) (bulk.Result, error) {
	if datasetID == "" {
		return bulk.Result{}, fmt.Errorf("dataset: dataset id cannot be empty")
	}

	if err := w.client.Datasets().Create(ctx, datasetID); err != nil {
		return bulk.Result{}, fmt.Errorf("dataset: ensure %q exists: %w", datasetID, err)
	}

	if err := document.EnsureIDs(docs, opts.CreateID); err != nil {
		return bulk.Result{}, err
	}

	return w.write(ctx, datasetID, api.BulkInsertOp, docs, opts)
}

// UpdateDocuments edits existing documents in place. Every document must
// already carry the id of the document it updates; CreateID only fills
// ids for documents that have none, it cannot invent a target.
func (w *Writer) UpdateDocuments(ctx context.Context, datasetID string, docs []document.Document, opts WriteOptions) (bulk.Result, error) {
	if datasetID == "" {
		return bulk.Result{}, fmt.Errorf("dataset: dataset id cannot be empty")
	}

	if err := document.EnsureIDs(docs, opts.CreateID); err != nil {
		return bulk.Result{}, err
	}

	return w.write(ctx, datasetID, api.BulkUpdateOp, docs, opts)
}

func (w *Writer) write(ctx context.Context, datasetID string, op api.BulkOperation, docs []document.Document, opts WriteOptions) (bulk.Result, error) {
	bulkOpts := w.defaults
	if opts.Bulk != nil {
		bulkOpts = *opts.Bulk
	}

	transport := api.NewBulkTransport(w.client.Datasets(), datasetID, op)
	outcome, err := w.bulkWriter(transport).Write(ctx, docs, bulkOpts)
	if err != nil {
		return outcome.Result(), err
	}

	result := outcome.Result()
	w.logger.Info("bulk write finished", nil, map[string]interface{}{
		"dataset":   datasetID,
		"operation": op.String(),
		"inserted":  result.Inserted,
		"failed":    len(result.FailedDocuments),
		"dashboard": MonitorURL(datasetID),
	})
	return result, nil
}

// MonitorURL returns the dashboard page where an upload's progress is
// visible.
func MonitorURL(datasetID string) string {
	return fmt.Sprintf("%s/dataset/%s/dashboard/monitor/", api.DashboardBaseURL, datasetID)
}
