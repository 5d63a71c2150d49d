package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wojtowpj/beerlog-backend/pkg/ctxutil"
)

// RequestIDHeader is the header a caller may use to supply its own
// correlation ID. The same header carries the ID back on the response.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns every request a correlation ID. An incoming
// RequestIDHeader value is reused; otherwise a fresh UUID is generated.
// The ID is stored in the request context and echoed on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
