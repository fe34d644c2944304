package middlewares

import (
	"context"
	"net/http"
	"strings"

	"shiftcal-service/internal/pkg/constvars"
	"shiftcal-service/internal/pkg/exceptions"
	"shiftcal-service/internal/pkg/utils"
)

// OptionalAuthenticate extracts the caller's subject from a Bearer token
// when one is presented. Anonymous requests pass through with an empty
// subject; only a malformed or expired token is rejected.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		subject, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SUBJECT_ID_KEY, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
