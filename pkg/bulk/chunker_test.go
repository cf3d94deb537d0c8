package bulk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdb/vecdb-go/pkg/document"
)

func TestPartition_PreservesOrder(t *testing.T) {
	docs := makeDocs(7)
	chunks := partition(docs, 3)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 3)
	assert.Len(t, chunks[1], 3)
	assert.Len(t, chunks[2], 1)

	var flattened []string
	for _, chunk := range chunks {
		flattened = append(flattened, document.IDs(chunk)...)
	}
	assert.Equal(t, document.IDs(docs), flattened)
}

func TestPartition_ChunkLargerThanInput(t *testing.T) {
	docs := makeDocs(2)
	chunks := partition(docs, 100)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 2)
}

func TestPartition_FloorsChunkSizeAtOne(t *testing.T) {
	docs := makeDocs(3)
	chunks := partition(docs, 0)
	assert.Len(t, chunks, 3)
}

func TestInitialChunkSize_ClampedToInputLength(t *testing.T) {
	// Tiny documents with a large transfer budget: the probe would allow
	// far more documents per chunk than exist.
	docs := makeDocs(5)
	size := initialChunkSize(docs, 20, 1)
	assert.Equal(t, 5, size)
}

func TestInitialChunkSize_LargeDocumentsRespectFloor(t *testing.T) {
	big := document.Document{
		document.IDField: "big",
		"text":           strings.Repeat("x", 400*1024),
	}
	docs := []document.Document{big, big, big, big, big, big, big, big, big, big}

	// A 400KB document exhausts a 1MB budget after the list multiplier,
	// so the probe result is clamped up to the configured floor.
	size := initialChunkSize(docs, 1, 8)
	assert.Equal(t, 8, size)
}

func TestShrinkChunkSize(t *testing.T) {
	assert.Equal(t, 50, shrinkChunkSize(100, 0.5))
	assert.Equal(t, 1, shrinkChunkSize(1, 0.5))
	assert.Equal(t, 1, shrinkChunkSize(2, 0.1))
	// A broken multiplier never grows the chunk.
	assert.Equal(t, 10, shrinkChunkSize(10, 2.0))
}
