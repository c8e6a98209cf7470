package logging

import "context"

type contextKey struct{}

var logDataKey = contextKey{}

// WithLogData returns a context carrying the request's LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey, logData)
}

// GetLogData returns the LogData stored on the context, or nil when the
// request was not routed through the logging middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, ok := ctx.Value(logDataKey).(*LogData)
	if !ok {
		return nil
	}
	return logData
}
