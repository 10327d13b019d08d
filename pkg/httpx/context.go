package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyTokenType ctxKey = "token_type"
	CtxKeyClaims    ctxKey = "claims" // full jwtx.Claims if a handler needs them
)

// UserIDFromContext returns the authenticated user id injected by
// AuthnMiddleware, or 0 if the request is unauthenticated.
func UserIDFromContext(ctx context.Context) int64 {
	if v, ok := ctx.Value(CtxKeyUserID).(int64); ok {
		return v
	}
	return 0
}

// TokenTypeFromContext returns the type ("access" or "refresh") of the token
// that authenticated the request, or "" if unauthenticated.
func TokenTypeFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyTokenType).(string); ok {
		return v
	}
	return ""
}
