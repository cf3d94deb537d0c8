package pullpush

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdb/vecdb-go/pkg/api"
	"github.com/vecdb/vecdb-go/pkg/bulk"
	"github.com/vecdb/vecdb-go/pkg/config"
	"github.com/vecdb/vecdb-go/pkg/document"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

// fakeStore serves a fixed document list through cursor paging and
// records everything written back.
type fakeStore struct {
	mu      sync.Mutex
	docs    []document.Document
	written []document.Document
	paths   []string
	failIDs map[string]string
}

func (f *fakeStore) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.paths = append(f.paths, r.URL.Path)

		switch {
		case r.URL.Path == "/datasets/create":
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "created"})

		case strings.HasSuffix(r.URL.Path, "/documents/get_where"):
			var req api.GetWhereRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			start := 0
			if req.Cursor != "" {
				start, _ = strconv.Atoi(req.Cursor)
			}
			end := start + req.PageSize
			if end > len(f.docs) {
				end = len(f.docs)
			}
			page := f.docs[start:end]

			cursor := ""
			if end < len(f.docs) {
				cursor = strconv.Itoa(end)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"documents": page,
				"cursor":    cursor,
				"count":     len(page),
			})

		default: // bulk_insert / bulk_update
			var body struct {
				Documents []document.Document `json:"documents"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			f.written = append(f.written, body.Documents...)

			inserted := 0
			var failed []map[string]any
			for _, doc := range body.Documents {
				if detail, ok := f.failIDs[doc.ID()]; ok {
					failed = append(failed, map[string]any{"_id": doc.ID(), "error": detail})
					continue
				}
				inserted++
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"inserted":         inserted,
				"failed_documents": failed,
			})
		}
	}
}

func storeDocs(n int) []document.Document {
	docs := make([]document.Document, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, document.Document{"_id": fmt.Sprintf("doc-%d", i), "name": fmt.Sprintf("Item %d", i)})
	}
	return docs
}

func newTestRunner(t *testing.T, store *fakeStore) *Runner {
	t.Helper()

	srv := httptest.NewServer(store.handler(t))
	t.Cleanup(srv.Close)

	cfg := config.NewConfig()
	cfg.Project = "test-project"
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL

	client, err := api.NewClient(cfg, nopLogger{})
	require.NoError(t, err)

	return NewRunner(client, nopLogger{}, bulk.Options{
		MaxWorkers:           2,
		RetryChunkMultiplier: 0.5,
		MaxRetries:           1,
		ChunkSize:            100,
		BackoffInterval:      time.Millisecond,
	})
}

func lowercaseNames(docs []document.Document) ([]document.Document, error) {
	for _, d := range docs {
		d["name"] = strings.ToLower(d["name"].(string))
	}
	return docs, nil
}

func TestRun_TransformsAndWritesAllPages(t *testing.T) {
	store := &fakeStore{docs: storeDocs(5)}
	runner := newTestRunner(t, store)
	checkpoint := filepath.Join(t.TempDir(), "run.log")

	report, err := runner.Run(context.Background(), "products", lowercaseNames, Options{
		RetrieveChunkSize: 2,
		CheckpointPath:    checkpoint,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Retrieved)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 5, report.Written)
	assert.Empty(t, report.FailedDocuments)

	require.Len(t, store.written, 5)
	for _, doc := range store.written {
		assert.Equal(t, strings.ToLower(doc["name"].(string)), doc["name"])
	}
	for _, path := range store.paths {
		if strings.Contains(path, "bulk_") {
			assert.Equal(t, "/datasets/products/documents/bulk_update", path)
		}
	}

	_, err = os.Stat(checkpoint)
	assert.True(t, os.IsNotExist(err), "checkpoint must be removed after a clean run")
}

func TestRun_TransformErrorAbortsRun(t *testing.T) {
	store := &fakeStore{docs: storeDocs(4)}
	runner := newTestRunner(t, store)

	boom := fmt.Errorf("nil pointer in transform")
	_, err := runner.Run(context.Background(), "products", func([]document.Document) ([]document.Document, error) {
		return nil, boom
	}, Options{
		RetrieveChunkSize: 2,
		CheckpointPath:    filepath.Join(t.TempDir(), "run.log"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.written, "nothing may be written after the transform fails")
}

func TestRun_ResumeSkipsCheckpointedIDs(t *testing.T) {
	store := &fakeStore{docs: storeDocs(4)}
	runner := newTestRunner(t, store)
	checkpoint := filepath.Join(t.TempDir(), "run.log")

	cp, err := OpenCheckpoint(checkpoint)
	require.NoError(t, err)
	require.NoError(t, cp.LogIDs([]string{"doc-0", "doc-1"}))
	require.NoError(t, cp.Close())

	report, err := runner.Run(context.Background(), "products", lowercaseNames, Options{
		RetrieveChunkSize: 10,
		CheckpointPath:    checkpoint,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, report.Retrieved)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 2, report.Written)
	require.Len(t, store.written, 2)
	assert.Equal(t, "doc-2", store.written[0].ID())
	assert.Equal(t, "doc-3", store.written[1].ID())
}

func TestRun_InsertsIntoUpdatedDataset(t *testing.T) {
	store := &fakeStore{docs: storeDocs(2)}
	runner := newTestRunner(t, store)

	report, err := runner.Run(context.Background(), "products", lowercaseNames, Options{
		UpdatedDatasetID: "products-v2",
		CheckpointPath:   filepath.Join(t.TempDir(), "run.log"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Written)
	assert.Equal(t, "/datasets/create", store.paths[0])
	assert.Contains(t, store.paths, "/datasets/products-v2/documents/bulk_insert")
}

func TestRun_AccumulatesWriteFailures(t *testing.T) {
	store := &fakeStore{
		docs:    storeDocs(3),
		failIDs: map[string]string{"doc-1": "schema mismatch"},
	}
	runner := newTestRunner(t, store)
	checkpoint := filepath.Join(t.TempDir(), "run.log")

	report, err := runner.Run(context.Background(), "products", lowercaseNames, Options{
		CheckpointPath: checkpoint,
	})
	require.NoError(t, err, "write failures are reported, not returned")

	assert.Equal(t, 2, report.Written)
	assert.Equal(t, []string{"doc-1"}, report.FailedDocuments)
	require.Len(t, report.FailedDocumentsDetailed, 1)
	assert.Equal(t, "schema mismatch", report.FailedDocumentsDetailed[0].Detail)

	_, err = os.Stat(checkpoint)
	assert.NoError(t, err, "checkpoint must survive a run with failures")

	cp, err := OpenCheckpoint(checkpoint)
	require.NoError(t, err)
	defer cp.Close()
	seen, err := cp.SeenIDs()
	require.NoError(t, err)
	assert.NotContains(t, seen, "doc-1", "failed ids must not be checkpointed")
}
