package contextkeys

import "context"

type traceIDKeyType struct{}

var traceIDKey = traceIDKeyType{}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext возвращает "" если trace id не был установлен.
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}
