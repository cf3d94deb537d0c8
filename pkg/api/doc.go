// Package api is the thin HTTP layer of the SDK.
//
// It provides a single low-level Client plus endpoint groups for
// datasets (create, list, delete, paging, bulk writes), vector and
// hybrid search, and deployables. The groups are deliberately shallow:
// they marshal requests, attach credentials, and decode responses.
// The retry and chunking logic lives in pkg/bulk.
//
// The only protocol-aware decision in the package is Classifier, the
// table mapping raw status codes onto the writer's retry classes. The
// defaults match the service's observed behavior (400 and 404 are
// non-retryable, 413 and 524 signal overload); swap the table via
// Client.WithClassifier when pointing the SDK at an endpoint with
// different semantics.
//
//	client, err := api.NewClient(cfg, log)
//	if err != nil {
//	    return err
//	}
//	transport := api.NewBulkTransport(client.Datasets(), "products", api.BulkInsertOp)
package api
