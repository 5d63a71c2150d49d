package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
	"github.com/wojtowpj/beerlog-backend/pkg/ctxutil"
)

// authUserID reads the authenticated user's ID that the auth middleware
// stored in the request context. Handlers pass it on to services
// explicitly; services never consult the context for identity.
func authUserID(r *http.Request) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// rateLimitResponse carries the remaining cooldown alongside the message.
type rateLimitResponse struct {
	Error     string `json:"error"`
	AllowedIn int    `json:"allowed_in"`
}

// handleError maps domain errors onto HTTP status codes. Unrecognized
// errors are logged and reported as 500 without leaking detail.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var rlErr *domain.RateLimitError
	switch {
	case errors.As(err, &rlErr):
		w.Header().Set("Retry-After", strconv.Itoa(rlErr.RetryAfter))
		writeJSON(w, http.StatusTooManyRequests, rateLimitResponse{
			Error:     rlErr.Message,
			AllowedIn: rlErr.RetryAfter,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathUUID parses a UUID path parameter. A malformed value yields a
// ValidationError naming the parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// querySort builds a SortSpec from the sort and order query parameters.
// order=desc sorts descending; anything else ascending.
func querySort(r *http.Request) domain.SortSpec {
	q := r.URL.Query()
	return domain.SortSpec{
		Field: q.Get("sort"),
		Desc:  q.Get("order") == "desc",
	}
}
