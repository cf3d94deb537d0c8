package document

import (
	"encoding/json"
	"fmt"
)

// IDField is the reserved field carrying a document's unique identifier.
const IDField = "_id"

// listSizeMultiplier pads the probed document size to account for the
// overhead of serializing documents as a list in the request body.
const listSizeMultiplier = 3

// Document is a JSON-like record stored on the hosted service: a mapping
// from field name to value. Vector fields use the "_vector_" suffix by
// service convention; the SDK treats them as opaque values.
type Document map[string]interface{}

// ID returns the document's identifier, or "" when the _id field is
// missing or not a string.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// SetID sets the document's identifier.
func (d Document) SetID(id string) {
	d[IDField] = id
}

// ApproxSizeBytes estimates the serialized byte footprint of a document
// inside a bulk request. The estimate is the indented JSON encoding times
// a fixed list-overhead multiplier; chunk sizing divides a transfer
// budget by this number.
func ApproxSizeBytes(doc Document) (int, error) {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return 0, fmt.Errorf("document: cannot serialize for size probe: %w", err)
	}
	return len(data) * listSizeMultiplier, nil
}

// IDs collects the identifiers of the given documents, in order.
func IDs(docs []Document) []string {
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID())
	}
	return ids
}
