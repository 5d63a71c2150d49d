package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
	"github.com/wojtowpj/beerlog-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

type credentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

// Auth authenticates every request. It accepts either a bearer access
// token or HTTP Basic credentials; requests carrying neither, or carrying
// invalid credentials, are rejected with 401.
func Auth(tokens tokenValidator, credentials credentialVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				userID, _, err := tokens.ValidateAccessToken(token)
				if err != nil {
					unauthorized(w)
					return
				}
				ctx := ctxutil.WithUserID(r.Context(), userID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if username, password, ok := r.BasicAuth(); ok {
				u, err := credentials.VerifyCredentials(r.Context(), username, password)
				if err != nil {
					unauthorized(w)
					return
				}
				ctx := ctxutil.WithUserID(r.Context(), u.ID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			unauthorized(w)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="beerlog"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"}) //nolint:errcheck
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
