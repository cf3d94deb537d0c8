// Package bulk implements the chunked, retrying write pipeline used to
// push large document sets to the hosted service.
//
// The service enforces payload-size and rate limits on its bulk
// endpoints, so a naive "send everything" client falls over on real
// datasets. This package owns the machinery that copes with that:
//
//   - Chunking: documents are partitioned into chunks sized so their
//     serialized form stays under a transfer budget, probed from a
//     representative document or forced via Options.ChunkSize.
//   - Concurrency: each pass dispatches all chunks through a bounded
//     worker pool (Options.MaxWorkers) and waits for every result
//     before deciding what to retry.
//   - Classification: every chunk response is classified as success,
//     give-up, overload or transient. Overload responses shrink the
//     chunk size multiplicatively; give-up responses cancel their
//     documents permanently; everything else is retried as-is.
//   - Bookkeeping: across all passes, each input id ends up in exactly
//     one of inserted / failed / cancelled. Partial failures are data in
//     the Outcome, never errors, so long batch jobs always complete a
//     best-effort pass.
//
// Basic Usage:
//
//	transport := api.NewBulkTransport(datasets, "products", api.BulkInsertOp)
//	writer := bulk.NewWriter(transport, log, bulk.DefaultOptions(cfg))
//
//	outcome, err := writer.Write(ctx, docs, writer.Options())
//	if err != nil {
//	    // context cancelled between passes
//	}
//	result := outcome.Result()
//	log.Info("done", nil, map[string]interface{}{
//	    "inserted": result.Inserted,
//	    "failed":   len(result.FailedDocuments),
//	})
//
// The Transport interface is the package's only view of the service;
// pkg/api provides the HTTP implementation and the mapping from raw
// status codes to StatusClass.
package bulk
