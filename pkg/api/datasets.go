package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vecdb/vecdb-go/pkg/bulk"
	"github.com/vecdb/vecdb-go/pkg/document"
)

// Datasets wraps the dataset management and document endpoints.
type Datasets struct {
	client *Client
}

// Filter is one retrieval predicate, in the service's filter shape.
type Filter struct {
	Field          string      `json:"field"`
	FilterType     string      `json:"filter_type"`
	Condition      string      `json:"condition"`
	ConditionValue interface{} `json:"condition_value"`
}

// BulkWriteResponse is the body of a successful bulk insert/update.
// FailedDocuments names documents the service rejected individually.
type BulkWriteResponse struct {
	Inserted        int                   `json:"inserted"`
	FailedDocuments []bulk.FailedDocument `json:"failed_documents"`
}

// GetWhereRequest selects a page of documents from a dataset.
type GetWhereRequest struct {
	Filters       []Filter `json:"filters"`
	PageSize      int      `json:"page_size,omitempty"`
	Cursor        string   `json:"cursor,omitempty"`
	SelectFields  []string `json:"select_fields,omitempty"`
	IncludeVector bool     `json:"include_vector"`
}

// GetWhereResponse is one page of documents plus the cursor to the next.
type GetWhereResponse struct {
	Documents []document.Document `json:"documents"`
	Cursor    string              `json:"cursor"`
	Count     int                 `json:"count"`
}

// Create ensures a dataset exists. The endpoint is idempotent on the
// service side, so callers invoke it unconditionally before inserting.
func (d *Datasets) Create(ctx context.Context, datasetID string) error {
	if datasetID == "" {
		return fmt.Errorf("api: dataset id cannot be empty")
	}
	return d.client.do(ctx, http.MethodPost, "datasets/create",
		map[string]any{"id": datasetID}, nil)
}

// List returns the names of all datasets in the project.
func (d *Datasets) List(ctx context.Context) ([]string, error) {
	var resp struct {
		Datasets []string `json:"datasets"`
	}
	if err := d.client.do(ctx, http.MethodGet, "datasets/list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Datasets, nil
}

// Delete removes a dataset and all its documents.
func (d *Datasets) Delete(ctx context.Context, datasetID string) error {
	if datasetID == "" {
		return fmt.Errorf("api: dataset id cannot be empty")
	}
	return d.client.do(ctx, http.MethodPost, fmt.Sprintf("datasets/%s/delete", datasetID), nil, nil)
}

// GetWhere retrieves one page of documents matching the request filters.
func (d *Datasets) GetWhere(ctx context.Context, datasetID string, req GetWhereRequest) (GetWhereResponse, error) {
	if req.Filters == nil {
		req.Filters = []Filter{}
	}
	var resp GetWhereResponse
	err := d.client.do(ctx, http.MethodPost,
		fmt.Sprintf("datasets/%s/documents/get_where", datasetID), req, &resp)
	return resp, err
}

// NumberOfDocuments counts the documents matching the given filters.
func (d *Datasets) NumberOfDocuments(ctx context.Context, datasetID string, filters []Filter) (int, error) {
	if filters == nil {
		filters = []Filter{}
	}
	var resp struct {
		Count int `json:"count"`
	}
	err := d.client.do(ctx, http.MethodPost,
		fmt.Sprintf("datasets/%s/documents/count", datasetID),
		map[string]any{"filters": filters}, &resp)
	return resp.Count, err
}

// bulkWrite posts one chunk of documents to the given bulk endpoint and
// returns the raw status alongside the parsed body, leaving retry
// classification to the caller.
func (d *Datasets) bulkWrite(ctx context.Context, datasetID, endpoint string, docs []document.Document) (int, BulkWriteResponse, error) {
	status, body, err := d.client.doRaw(ctx, http.MethodPost,
		fmt.Sprintf("datasets/%s/documents/%s", datasetID, endpoint),
		map[string]any{"documents": docs, "return_documents": false})
	if err != nil {
		return status, BulkWriteResponse{}, err
	}

	var resp BulkWriteResponse
	if status == http.StatusOK {
		if err := json.Unmarshal(body, &resp); err != nil {
			return status, BulkWriteResponse{}, fmt.Errorf("api: decode bulk response: %w", err)
		}
	}
	return status, resp, nil
}

// BulkInsert writes one chunk of new documents.
func (d *Datasets) BulkInsert(ctx context.Context, datasetID string, docs []document.Document) (int, BulkWriteResponse, error) {
	return d.bulkWrite(ctx, datasetID, "bulk_insert", docs)
}

// BulkUpdate edits one chunk of existing documents in place.
func (d *Datasets) BulkUpdate(ctx context.Context, datasetID string, docs []document.Document) (int, BulkWriteResponse, error) {
	return d.bulkWrite(ctx, datasetID, "bulk_update", docs)
}
