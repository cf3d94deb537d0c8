package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vecdb/vecdb-go/pkg/document"
)

// Search wraps the vector and hybrid search endpoints.
type Search struct {
	client *Client
}

// VectorQuery is one (vector, field) pair of a multivector query.
type VectorQuery struct {
	Vector []float64 `json:"vector"`
	Fields []string  `json:"fields"`
}

// VectorSearchRequest describes a similarity search over one dataset.
// Zero values mean "service default" for every optional field.
type VectorSearchRequest struct {
	DatasetID           string              `json:"dataset_id"`
	MultivectorQuery    []VectorQuery       `json:"multivector_query"`
	PositiveDocumentIDs map[string]float64  `json:"positive_document_ids,omitempty"`
	NegativeDocumentIDs map[string]float64  `json:"negative_document_ids,omitempty"`
	VectorOperation     string              `json:"vector_operation,omitempty"`
	ApproximationDepth  int                 `json:"approximation_depth,omitempty"`
	SumFields           bool                `json:"sum_fields"`
	PageSize            int                 `json:"page_size,omitempty"`
	Page                int                 `json:"page,omitempty"`
	SimilarityMetric    string              `json:"similarity_metric,omitempty"`
	Facets              []string            `json:"facets,omitempty"`
	Filters             []Filter            `json:"filters,omitempty"`
	MinScore            float64             `json:"min_score,omitempty"`
	SelectFields        []string            `json:"select_fields,omitempty"`
	IncludeVector       bool                `json:"include_vector"`
	IncludeCount        bool                `json:"include_count"`
	Ascending           bool                `json:"asc"`
	KeepSearchHistory   bool                `json:"keep_search_history"`
}

// HybridSearchRequest combines a vector query with a text query over
// the given fields.
type HybridSearchRequest struct {
	VectorSearchRequest
	Text   string   `json:"text"`
	Fields []string `json:"fields"`
}

// SearchResponse is a page of scored documents.
type SearchResponse struct {
	Results []document.Document `json:"results"`
	Count   int                 `json:"count"`
}

// Vector performs a similarity search against a dataset.
func (s *Search) Vector(ctx context.Context, req VectorSearchRequest) (SearchResponse, error) {
	if err := validateSearchRequest(req.DatasetID, req.MultivectorQuery); err != nil {
		return SearchResponse{}, err
	}
	var resp SearchResponse
	err := s.client.do(ctx, http.MethodPost, "services/search/vector", req, &resp)
	return resp, err
}

// Hybrid performs a combined vector and text search against a dataset.
func (s *Search) Hybrid(ctx context.Context, req HybridSearchRequest) (SearchResponse, error) {
	if err := validateSearchRequest(req.DatasetID, req.MultivectorQuery); err != nil {
		return SearchResponse{}, err
	}
	if req.Text == "" {
		return SearchResponse{}, fmt.Errorf("api: hybrid search requires a text query")
	}
	var resp SearchResponse
	err := s.client.do(ctx, http.MethodPost, "services/search/hybrid", req, &resp)
	return resp, err
}

func validateSearchRequest(datasetID string, query []VectorQuery) error {
	if datasetID == "" {
		return fmt.Errorf("api: dataset id cannot be empty")
	}
	if len(query) == 0 {
		return fmt.Errorf("api: multivector query cannot be empty")
	}
	for i, q := range query {
		if len(q.Vector) == 0 {
			return fmt.Errorf("api: query [%d] has an empty vector", i)
		}
		if len(q.Fields) == 0 {
			return fmt.Errorf("api: query [%d] names no vector fields", i)
		}
	}
	return nil
}
