package pullpush

import (
	"context"
	"fmt"

	"github.com/vecdb/vecdb-go/pkg/api"
	"github.com/vecdb/vecdb-go/pkg/bulk"
	"github.com/vecdb/vecdb-go/pkg/document"
)

// DefaultRetrieveChunkSize is the page size used when pulling documents
// unless the options say otherwise.
const DefaultRetrieveChunkSize = 200

// Run pulls every document matching opts.Filters from datasetID, applies
// update to each page, and writes the transformed documents back:
// updating in place, or inserting into opts.UpdatedDatasetID when set.
//
// Progress is checkpointed per page: a rerun after a crash skips
// documents whose ids the checkpoint already records. The checkpoint
// file is removed once a run finishes with no failed documents.
//
// A transform error aborts the run immediately and is returned; write
// failures are accumulated into the Report instead.
func (r *Runner) Run(ctx context.Context, datasetID string, update UpdateFunc, opts Options) (Report, error) {
	report := Report{}
	if datasetID == "" {
		return report, fmt.Errorf("pullpush: dataset id cannot be empty")
	}
	if update == nil {
		return report, fmt.Errorf("pullpush: update function cannot be nil")
	}

	destID := datasetID
	op := api.BulkUpdateOp
	if opts.UpdatedDatasetID != "" && opts.UpdatedDatasetID != datasetID {
		destID = opts.UpdatedDatasetID
		op = api.BulkInsertOp
		if err := r.client.Datasets().Create(ctx, destID); err != nil {
			return report, fmt.Errorf("pullpush: ensure %q exists: %w", destID, err)
		}
	}

	checkpoint, err := OpenCheckpoint(r.checkpointPath(datasetID, opts))
	if err != nil {
		return report, err
	}
	defer checkpoint.Close()

	seen, err := checkpoint.SeenIDs()
	if err != nil {
		return report, err
	}
	if len(seen) > 0 {
		r.logger.Info("resuming from checkpoint", nil, map[string]interface{}{
			"dataset":        datasetID,
			"checkpoint":     checkpoint.Path(),
			"already_logged": len(seen),
		})
	}

	pageSize := opts.RetrieveChunkSize
	if pageSize <= 0 {
		pageSize = DefaultRetrieveChunkSize
	}

	bulkOpts := r.defaults
	if opts.Bulk != nil {
		bulkOpts = *opts.Bulk
	}

	writer := bulk.NewWriter(api.NewBulkTransport(r.client.Datasets(), destID, op), r.logger, bulkOpts)
	if r.collectors != nil {
		writer = writer.WithCollectors(r.collectors)
	}
	if r.tracer != nil {
		writer = writer.WithTracer(r.tracer)
	}

	cursor := ""
	for {
		page, err := r.client.Datasets().GetWhere(ctx, datasetID, api.GetWhereRequest{
			Filters:       opts.Filters,
			PageSize:      pageSize,
			Cursor:        cursor,
			SelectFields:  opts.SelectFields,
			IncludeVector: opts.IncludeVector,
		})
		if err != nil {
			return report, fmt.Errorf("pullpush: retrieve page: %w", err)
		}
		if len(page.Documents) == 0 {
			break
		}
		report.Retrieved += len(page.Documents)

		pending := make([]document.Document, 0, len(page.Documents))
		for _, doc := range page.Documents {
			if _, done := seen[doc.ID()]; done {
				report.Skipped++
				continue
			}
			pending = append(pending, doc)
		}

		if len(pending) > 0 {
			transformed, err := update(pending)
			if err != nil {
				return report, fmt.Errorf("pullpush: transform aborted the run: %w", err)
			}

			outcome, err := writer.Write(ctx, transformed, bulkOpts)
			if err != nil {
				return report, err
			}
			result := outcome.Result()

			report.Written += result.Inserted
			report.FailedDocuments = append(report.FailedDocuments, result.FailedDocuments...)
			report.FailedDocumentsDetailed = append(report.FailedDocumentsDetailed, result.FailedDocumentsDetailed...)

			if err := checkpoint.LogIDs(writtenIDs(transformed, result.FailedDocuments)); err != nil {
				return report, err
			}
		}

		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	r.logger.Info("pull-update-push finished", nil, map[string]interface{}{
		"dataset":   datasetID,
		"target":    destID,
		"retrieved": report.Retrieved,
		"skipped":   report.Skipped,
		"written":   report.Written,
		"failed":    len(report.FailedDocuments),
	})

	if len(report.FailedDocuments) == 0 {
		if err := checkpoint.Remove(); err != nil {
			r.logger.Warn("could not remove checkpoint", err, map[string]interface{}{"path": checkpoint.Path()})
		}
	}
	return report, nil
}

func (r *Runner) checkpointPath(datasetID string, opts Options) string {
	if opts.CheckpointPath != "" {
		return opts.CheckpointPath
	}
	return fmt.Sprintf("_%s_pullpush.log", datasetID)
}

// writtenIDs returns the ids of docs that are not named in failed.
func writtenIDs(docs []document.Document, failed []string) []string {
	failedSet := make(map[string]struct{}, len(failed))
	for _, id := range failed {
		failedSet[id] = struct{}{}
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		if _, bad := failedSet[doc.ID()]; !bad {
			ids = append(ids, doc.ID())
		}
	}
	return ids
}
