// Package logger provides structured JSON logging for the SDK.
//
// It wraps Uber's Zap logger with a small, stable surface
// (Info/Debug/Warn/Error/Fatal) that takes an optional error and
// free-form field maps. Packages in this module declare a local Logger
// interface matching that surface, so any compatible implementation can
// be injected, including generated mocks.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{Level: "info"})
//
//	log.Info("Inserting documents", nil, map[string]interface{}{
//	    "dataset_id": "products",
//	    "chunk_size": 100,
//	})
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		// ... other modules
//	)
//
// Configuration:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	ZAP_LOGGER_SERVICE_NAME=my-app  # "service" field on every entry
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
