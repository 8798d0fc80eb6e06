package httpx

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/filekeeper/internal/common"
)

// TokenVerifier resolves an access token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type contextKey string

const (
	contextKeyUserID    contextKey = "filekeeper-user-id"
	contextKeyRequestID contextKey = "filekeeper-request-id"
)

// requireToken runs next only when the request carries a valid access token.
func (r *Router) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		userID, err := r.tokens.Verify(req.Header.Get(common.AccessTokenHeaderName))
		if err != nil {
			r.logger.Warn(req.Context(), "token rejected", "error", err, "path", req.URL.Path)
			r.writeServiceError(w, req, "token", err)
			return
		}
		ctx := context.WithValue(req.Context(), contextKeyUserID, userID)
		next(w, req.WithContext(ctx))
	}
}

// UserIDFromContext returns the authenticated user id set by requireToken.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(contextKeyUserID).(int64)
	return id, ok
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}
