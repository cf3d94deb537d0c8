// Package dataset provides the high-level insert and update helpers
// most applications start with.
//
// A Writer wraps the API client and the bulk machinery: it ensures the
// target dataset exists, assigns ids where allowed, pushes the
// documents through the chunked retrying writer, and logs the dashboard
// URL to watch the upload. Callers who need finer control over chunking
// and retries use pkg/bulk directly.
//
//	w := dataset.NewWriter(client, log, bulk.DefaultOptions(cfg))
//	result, err := w.InsertDocuments(ctx, "products", docs, dataset.WriteOptions{CreateID: true})
package dataset
