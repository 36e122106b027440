package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/platform/logging"
)

// MsgInternal replaces the detail of every INTERNAL error on the wire.
const MsgInternal = "an unexpected error occurred"

// msgUnauthenticated is the detail of 401 responses.
const msgUnauthenticated = "authentication required"

const msgTimeout = "the request took too long to complete"

// ErrorResponse represents an RFC 9457 Problem Details response. Code
// carries the error kind (e.g. "FORBIDDEN") as an extension member.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	kind := domain.KindOf(err)
	status := KindToStatus(kind)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     kind.String(),
		Detail:   PublicMessage(err),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// PublicMessage returns the text of err that may be shown to a caller.
// INTERNAL errors never leak their message or cause.
func PublicMessage(err error) string {
	if !domain.KindOf(err).Displayable() {
		return MsgInternal
	}
	return err.Error()
}

func kindOf(err error) string {
	return domain.KindOf(err).String()
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. INTERNAL errors are logged with their full cause chain first.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	if resp.Status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	writeProblem(w, r, resp)
}

// WriteUnauthorized writes a 401 problem response for a request with no
// resolvable principal.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusUnauthorized),
		Status:   http.StatusUnauthorized,
		Code:     "UNAUTHENTICATED",
		Detail:   msgUnauthenticated,
		Instance: r.RequestURI,
	})
}

// WriteTimeout writes a 503 problem response for a request that ran past
// the server's deadline.
func WriteTimeout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusServiceUnavailable),
		Status:   http.StatusServiceUnavailable,
		Code:     "TIMEOUT",
		Detail:   msgTimeout,
		Instance: r.RequestURI,
	})
}

// WriteRouteError writes the problem response for a request no route
// matches: 404 NOT_FOUND, or 405 METHOD_NOT_ALLOWED when the path exists
// under another method.
func WriteRouteError(w http.ResponseWriter, r *http.Request, status int) {
	code := domain.KindNotFound.String()
	if status == http.StatusMethodNotAllowed {
		code = "METHOD_NOT_ALLOWED"
	}
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path),
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// KindToStatus maps an error kind to its HTTP status code.
func KindToStatus(kind domain.Kind) int {
	switch kind {
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries. Bare field names are body fields; names that already
// carry a location ("path.boardId", "query.status") are kept as is.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := field
		if !strings.HasPrefix(field, "path.") && !strings.HasPrefix(field, "query.") {
			loc = "body." + field
		}
		details = append(details, ErrorDetail{
			Location: loc,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
