package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validation"
)

const (
	Header    = "X-Request-ID"
	idPattern = `[a-zA-Z0-9_-]{1,128}`
)

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if Validate(requestID).HasError() {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// Validate checks that id can be reused as a request id.
func Validate(id string) validation.Result {
	return validation.NotNullAndMatches(&id, idPattern, "request id")
}
