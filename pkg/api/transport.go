package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vecdb/vecdb-go/pkg/bulk"
	"github.com/vecdb/vecdb-go/pkg/document"
)

// BulkOperation selects which bulk endpoint a transport writes to.
type BulkOperation int

const (
	// BulkInsertOp inserts new documents.
	BulkInsertOp BulkOperation = iota
	// BulkUpdateOp edits existing documents in place.
	BulkUpdateOp
)

func (op BulkOperation) String() string {
	if op == BulkUpdateOp {
		return "bulk_update"
	}
	return "bulk_insert"
}

// BulkTransport adapts the dataset bulk endpoints to the bulk.Transport
// interface: one instance is bound to a dataset and an operation, and
// classifies each response through the client's status table.
type BulkTransport struct {
	datasets  *Datasets
	datasetID string
	op        BulkOperation
}

// NewBulkTransport binds a transport to a dataset and operation.
func NewBulkTransport(d *Datasets, datasetID string, op BulkOperation) *BulkTransport {
	return &BulkTransport{
		datasets:  d,
		datasetID: datasetID,
		op:        op,
	}
}

// WriteChunk writes one chunk and maps the raw HTTP outcome onto the
// writer's status classes. Network-level errors are returned as-is; the
// writer treats them as transient.
func (t *BulkTransport) WriteChunk(ctx context.Context, docs []document.Document) (bulk.ChunkResponse, error) {
	var (
		status int
		resp   BulkWriteResponse
		err    error
	)
	switch t.op {
	case BulkUpdateOp:
		status, resp, err = t.datasets.BulkUpdate(ctx, t.datasetID, docs)
	default:
		status, resp, err = t.datasets.BulkInsert(ctx, t.datasetID, docs)
	}
	if err != nil {
		return bulk.ChunkResponse{}, err
	}

	class := t.datasets.client.classifier.Classify(status)
	out := bulk.ChunkResponse{Status: class}

	switch class {
	case bulk.StatusSuccess:
		out.Written = resp.Inserted
		out.FailedDocuments = resp.FailedDocuments
	default:
		out.Detail = fmt.Sprintf("http %d", status)
		if status == http.StatusRequestEntityTooLarge {
			out.Detail = fmt.Sprintf("http %d: payload too large", status)
		}
	}
	return out, nil
}
