package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdb/vecdb-go/pkg/bulk"
	"github.com/vecdb/vecdb-go/pkg/document"
)

func testDocs(ids ...string) []document.Document {
	docs := make([]document.Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, document.Document{"_id": id})
	}
	return docs
}

func TestBulkTransport_SuccessWithPartialFailures(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Documents       []document.Document `json:"documents"`
		ReturnDocuments bool                `json:"return_documents"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"inserted": 2,
			"failed_documents": []map[string]any{
				{"_id": "c", "error": "field type mismatch"},
			},
		})
	})

	transport := NewBulkTransport(client.Datasets(), "products", BulkInsertOp)
	resp, err := transport.WriteChunk(context.Background(), testDocs("a", "b", "c"))
	require.NoError(t, err)

	assert.Equal(t, "/datasets/products/documents/bulk_insert", gotPath)
	assert.False(t, gotBody.ReturnDocuments)
	assert.Len(t, gotBody.Documents, 3)

	assert.Equal(t, bulk.StatusSuccess, resp.Status)
	assert.Equal(t, 2, resp.Written)
	require.Len(t, resp.FailedDocuments, 1)
	assert.Equal(t, "c", resp.FailedDocuments[0].ID)
	assert.Equal(t, "field type mismatch", resp.FailedDocuments[0].Detail)
}

func TestBulkTransport_UpdateUsesUpdateEndpoint(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"inserted": 1})
	})

	transport := NewBulkTransport(client.Datasets(), "products", BulkUpdateOp)
	resp, err := transport.WriteChunk(context.Background(), testDocs("a"))
	require.NoError(t, err)

	assert.Equal(t, "/datasets/products/documents/bulk_update", gotPath)
	assert.Equal(t, bulk.StatusSuccess, resp.Status)
	assert.Equal(t, 1, resp.Written)
}

func TestBulkTransport_ClassifiesStatusCodes(t *testing.T) {
	cases := []struct {
		name       string
		statusCode int
		wantClass  bulk.StatusClass
		wantDetail string
	}{
		{name: "bad request gives up", statusCode: 400, wantClass: bulk.StatusGiveUp, wantDetail: "http 400"},
		{name: "not found gives up", statusCode: 404, wantClass: bulk.StatusGiveUp, wantDetail: "http 404"},
		{name: "payload too large is overload", statusCode: 413, wantClass: bulk.StatusOverload, wantDetail: "http 413: payload too large"},
		{name: "origin timeout is overload", statusCode: 524, wantClass: bulk.StatusOverload, wantDetail: "http 524"},
		{name: "server error is transient", statusCode: 500, wantClass: bulk.StatusTransient, wantDetail: "http 500"},
		{name: "bad gateway is transient", statusCode: 502, wantClass: bulk.StatusTransient, wantDetail: "http 502"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
			})

			transport := NewBulkTransport(client.Datasets(), "products", BulkInsertOp)
			resp, err := transport.WriteChunk(context.Background(), testDocs("a"))
			require.NoError(t, err, "http-level failures must be classified, not returned")

			assert.Equal(t, tc.wantClass, resp.Status)
			assert.Equal(t, tc.wantDetail, resp.Detail)
			assert.Zero(t, resp.Written)
		})
	}
}

func TestBulkTransport_CustomClassifier(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	client.WithClassifier(Classifier{
		http.StatusOK:              bulk.StatusSuccess,
		http.StatusTooManyRequests: bulk.StatusOverload,
	})

	transport := NewBulkTransport(client.Datasets(), "products", BulkInsertOp)
	resp, err := transport.WriteChunk(context.Background(), testDocs("a"))
	require.NoError(t, err)
	assert.Equal(t, bulk.StatusOverload, resp.Status)
}

func TestBulkTransport_NetworkErrorIsReturned(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	client.baseURL = "http://127.0.0.1:1" // nothing listens here

	transport := NewBulkTransport(client.Datasets(), "products", BulkInsertOp)
	_, err := transport.WriteChunk(context.Background(), testDocs("a"))
	require.Error(t, err)
}

func TestBulkOperation_String(t *testing.T) {
	assert.Equal(t, "bulk_insert", BulkInsertOp.String())
	assert.Equal(t, "bulk_update", BulkUpdateOp.String())
}
