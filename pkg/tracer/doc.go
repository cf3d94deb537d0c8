// Package tracer provides distributed tracing for the SDK using
// OpenTelemetry.
//
// The HTTP client and the bulk writer create spans for their own
// operations ("api.request", "bulk.write") when a Tracer is attached;
// without one they run untraced at no cost. Export is opt-in: with
// EnableExport unset, spans are created but never leave the process,
// which keeps local development and tests quiet.
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//	tr := tracer.NewClient(tracer.NewConfig(), log)
//
//	ctx, span := tr.StartSpan(ctx, "ingest-batch")
//	defer span.End()
package tracer
