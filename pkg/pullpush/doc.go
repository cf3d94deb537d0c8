// Package pullpush runs whole-dataset transformations: pull documents
// page by page, apply a caller-supplied transform, push the results
// back through the chunked bulk writer.
//
// Runs over large datasets take long enough to be interrupted, so the
// runner checkpoints processed ids to a local file after each page. A
// rerun with the same checkpoint skips what is already done; the file
// is deleted once a run completes cleanly.
//
//	runner := pullpush.NewRunner(client, log, bulk.DefaultOptions(cfg))
//	report, err := runner.Run(ctx, "products", func(docs []document.Document) ([]document.Document, error) {
//	    for _, d := range docs {
//	        d["name_lower"] = strings.ToLower(d["name"].(string))
//	    }
//	    return docs, nil
//	}, pullpush.Options{})
package pullpush
