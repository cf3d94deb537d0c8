package bulk

import (
	"context"

	"github.com/vecdb/vecdb-go/pkg/document"
)

// StatusClass classifies the outcome of a single chunk write. The HTTP
// transport maps raw status codes onto these classes in one place (see
// pkg/api), so the retry loop never branches on protocol details.
type StatusClass int

const (
	// StatusSuccess means the chunk was accepted. The response may still
	// name individual documents that failed; those are retried.
	StatusSuccess StatusClass = iota

	// StatusGiveUp means the service rejected the chunk with a
	// non-retryable application error (validation and the like). Its
	// documents are cancelled and never retried.
	StatusGiveUp

	// StatusOverload means the payload exceeded a service limit or timed
	// out under load. The chunk is retried at a reduced chunk size.
	StatusOverload

	// StatusTransient covers every other failure, including transport
	// errors. The chunk is retried unchanged.
	StatusTransient
)

func (s StatusClass) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusGiveUp:
		return "give_up"
	case StatusOverload:
		return "overload"
	case StatusTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// FailedDocument pairs a document id with the failure detail the service
// reported for it.
type FailedDocument struct {
	ID     string `json:"_id"`
	Detail string `json:"error,omitempty"`
}

// ChunkResponse is the structured result of one chunk-write attempt.
type ChunkResponse struct {
	// Status is the response classification driving the retry decision.
	Status StatusClass

	// Written is the number of documents the service accepted.
	Written int

	// FailedDocuments lists documents the service rejected individually
	// inside an otherwise successful response.
	FailedDocuments []FailedDocument

	// Detail carries chunk-level failure context, e.g. the raw status line
	// of a rejected request.
	Detail string
}

// Transport performs a single chunk write against the remote service.
//
// Implementations map their protocol's outcomes onto StatusClass. A
// returned error is equivalent to StatusTransient: the writer never lets
// a transport failure escape a Write call.
type Transport interface {
	WriteChunk(ctx context.Context, docs []document.Document) (ChunkResponse, error)
}

// ChunkResult couples a chunk's response with the documents that were in
// it, so failed chunks can be folded back into the retry set.
type ChunkResult struct {
	Response  ChunkResponse
	Documents []document.Document
}
