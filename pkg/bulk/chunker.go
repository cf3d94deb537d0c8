package bulk

import (
	"github.com/vecdb/vecdb-go/pkg/document"
)

const bytesPerMB = 1024 * 1024

// initialChunkSize derives a chunk size from the serialized size of a
// representative document: floor(targetChunkBytes / perDocBytes) + 1,
// clamped to at least minChunkSize and at most len(docs).
//
// The first document is taken as representative; wildly heterogeneous
// document sizes are absorbed by the overload shrink path at runtime.
func initialChunkSize(docs []document.Document, targetChunkMB, minChunkSize int) int {
	if minChunkSize < 1 {
		minChunkSize = 1
	}

	size := minChunkSize
	if perDoc, err := document.ApproxSizeBytes(docs[0]); err == nil && perDoc > 0 {
		size = targetChunkMB*bytesPerMB/perDoc + 1
	}

	if size < minChunkSize {
		size = minChunkSize
	}
	if size > len(docs) {
		size = len(docs)
	}
	return size
}

// shrinkChunkSize applies the overload multiplier, flooring at one
// document per chunk. Chunk size never grows during a run.
func shrinkChunkSize(size int, multiplier float64) int {
	shrunk := int(float64(size) * multiplier)
	if shrunk < 1 {
		shrunk = 1
	}
	if shrunk > size {
		shrunk = size
	}
	return shrunk
}

// partition splits docs into chunks of at most chunkSize documents,
// preserving the original relative order.
func partition(docs []document.Document, chunkSize int) [][]document.Document {
	if chunkSize < 1 {
		chunkSize = 1
	}

	chunks := make([][]document.Document, 0, (len(docs)+chunkSize-1)/chunkSize)
	for start := 0; start < len(docs); start += chunkSize {
		end := start + chunkSize
		if end > len(docs) {
			end = len(docs)
		}
		chunks = append(chunks, docs[start:end])
	}
	return chunks
}
