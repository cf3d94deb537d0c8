package document

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMissingID reports a document without an _id field when automatic
// identifier generation is disabled.
var ErrMissingID = errors.New("document: missing _id field")

// EnsureIDs guarantees that every document carries a stable string
// identifier before the first write attempt.
//
// Existing non-string identifiers (numbers, mostly) are converted to
// their string form in place. Documents without an _id field get a fresh
// UUID when autoGenerate is true; otherwise EnsureIDs fails without
// modifying the remaining documents.
func EnsureIDs(docs []Document, autoGenerate bool) error {
	for i, doc := range docs {
		if _, ok := doc[IDField]; !ok {
			if !autoGenerate {
				return fmt.Errorf("%w (document %d)", ErrMissingID, i)
			}
			doc.SetID(uuid.NewString())
			continue
		}

		switch v := doc[IDField].(type) {
		case string:
			// already canonical
		case float64:
			// JSON-decoded numeric ids arrive as float64
			doc.SetID(formatNumericID(v))
		case int:
			doc.SetID(fmt.Sprintf("%d", v))
		case int64:
			doc.SetID(fmt.Sprintf("%d", v))
		default:
			doc.SetID(fmt.Sprint(v))
		}
	}
	return nil
}

func formatNumericID(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%v", v)
}
