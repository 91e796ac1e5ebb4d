package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/praxora/praxis-backend/internal/auth"
	"github.com/praxora/praxis-backend/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

// Auth returns middleware that requires a valid bearer token and puts the
// caller's identity (user, practice, role) into the request context. Every
// route behind it is tenant-scoped; there is no anonymous access to clock
// or report endpoints.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			identity, err := validator.Validate(token)
			if err != nil {
				unauthorized(w, "unauthorized")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), identity.UserID)
			ctx = ctxutil.WithPracticeID(ctx, identity.PracticeID)
			if identity.Role != "" {
				ctx = ctxutil.WithRole(ctx, identity.Role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, "{\"error\":%q}\n", message)
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
