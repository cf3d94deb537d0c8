package api

import (
	"io"
	"net/http"

	"github.com/vecdb/vecdb-go/pkg/bulk"
)

// Classifier maps raw HTTP status codes onto retry classes. The mapping
// is data, not logic: it is the single place where protocol-specific
// status knowledge lives, and callers can replace it wholesale when the
// service's behavior differs from the defaults.
type Classifier map[int]bulk.StatusClass

// DefaultClassifier reproduces the service's documented behavior:
// 200 is success, 400/404 are non-retryable application rejections,
// 413/524 signal payload or timeout overload, anything else is treated
// as transient and retried.
func DefaultClassifier() Classifier {
	return Classifier{
		http.StatusOK:                    bulk.StatusSuccess,
		http.StatusBadRequest:            bulk.StatusGiveUp,
		http.StatusNotFound:              bulk.StatusGiveUp,
		http.StatusRequestEntityTooLarge: bulk.StatusOverload,
		524:                              bulk.StatusOverload, // origin timeout
	}
}

// Classify returns the class for a status code, defaulting to transient
// for anything the table doesn't name.
func (c Classifier) Classify(statusCode int) bulk.StatusClass {
	if class, ok := c[statusCode]; ok {
		return class
	}
	return bulk.StatusTransient
}

func readBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(resp.Body)
}
