package backend

import "context"

type ctxKey string

const (
	sessionKey   ctxKey = "backendSession"
	requestIDKey ctxKey = "requestID"
)

// WithSession сохраняет в контексте заголовок Cookie, с которым пришел пользователь
func WithSession(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, sessionKey, cookie)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func sessionFrom(ctx context.Context) string {
	value, _ := ctx.Value(sessionKey).(string)
	return value
}

func RequestIDFrom(ctx context.Context) string {
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}
