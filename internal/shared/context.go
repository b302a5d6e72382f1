package shared

import (
	"context"
	"net/http"
)

type sessionContextKey struct{}

// ContextWithSession stores the session in context.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext extracts the session from context.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}

// SessionKey identifies the visitor of r for rate limiting. It is empty for
// requests without a persisted session.
func SessionKey(r *http.Request) string {
	sess := SessionFromContext(r.Context())
	if sess == nil || sess.IsNew() {
		return ""
	}
	return sess.ID
}
