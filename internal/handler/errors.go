package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkordes/sushi-api/backend/internal/handler/gen"
)

// notFoundBody returns the ErrorResponse for a slug that matches no region.
func notFoundBody() gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: "Region not found"}}
}

// conflictBody returns the ErrorResponse for a create whose slug is taken.
func conflictBody(err, sentinel error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "conflict", Message: messageAfter(err, sentinel)}}
}

// validationBody returns the ErrorResponse for a domain validation failure.
func validationBody(err, sentinel error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: messageAfter(err, sentinel)}}
}

// writeError writes an ErrorResponse outside the typed response objects,
// for failures the generated code reports through the error hooks.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}})
}

// requestError handles requests rejected before a handler runs: an oversized
// body is 413, any other decode or binding failure is 400.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large",
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return
	}
	writeError(w, http.StatusBadRequest, "validation_error", err.Error())
}

// responseError handles errors a handler returned instead of a typed response.
// The raw error text is passed through to the client.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
}

// messageAfter extracts the human-readable part that follows a wrapped sentinel.
// e.g. "service.RegionService.Create: conflict: Region with slug 'x' already exists"
// → "Region with slug 'x' already exists"
func messageAfter(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
