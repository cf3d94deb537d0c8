package logger

import "go.uber.org/zap"

// toFields flattens an optional error plus field maps into zap fields.
// When several maps share a key, the last one wins.
func toFields(err error, fields []map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, 1+len(fields))
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for _, m := range fields {
		for k, v := range m {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}

// Info logs progress and successful operations.
//
// Example:
//
//	log.Info("Documents inserted", nil, map[string]interface{}{
//	    "dataset_id": "products",
//	    "inserted":   250,
//	})
func (l *Logger) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, toFields(err, fields)...)
}

// Debug logs development and troubleshooting detail.
func (l *Logger) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, toFields(err, fields)...)
}

// Warn logs conditions that are handled but worth attention, such as
// documents queued for another retry pass.
func (l *Logger) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, toFields(err, fields)...)
}

// Error logs failures that affect the current operation without ending
// the process.
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, toFields(err, fields)...)
}

// Fatal logs the message and terminates the process with exit code 1.
func (l *Logger) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, toFields(err, fields)...)
}
