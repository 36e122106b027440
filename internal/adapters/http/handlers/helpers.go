package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/platform/logging"
)

// Path parameter names shared by the router and the handlers.
const (
	ParamBoardID   = "boardId"
	ParamUserID    = "userId"
	ParamLabelID   = "labelId"
	ParamSprintID  = "sprintId"
	ParamTicketID  = "ticketId"
	ParamCommentID = "commentId"
)

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be a positive integer"},
		}
	}
	return id, nil
}

// request carries the actor and the path ids a handler asked for.
type request struct {
	actor int64
	ids   map[string]int64
}

func (q request) id(param string) int64 {
	return q.ids[param]
}

// scope resolves the authenticated actor and parses params from the path.
// On failure it writes the error response and returns false.
func scope(w http.ResponseWriter, r *http.Request, params ...string) (request, bool) {
	u, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		dto.WriteUnauthorized(w, r)
		return request{}, false
	}

	q := request{actor: u.ID, ids: make(map[string]int64, len(params))}
	for _, p := range params {
		id, err := parseID(r, p)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return request{}, false
		}
		q.ids[p] = id
	}
	return q, true
}

// parseTicketFilter reads the ticket list filters from the query string:
// sprint_id, backlog, status, type, assignee_id, label_id and parent_id.
func parseTicketFilter(values url.Values) (ticket.Filter, error) {
	var f ticket.Filter
	fields := make(map[string]string)

	optionalID := func(name string) *int64 {
		raw := values.Get(name)
		if raw == "" {
			return nil
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			fields["query."+name] = "must be a positive integer"
			return nil
		}
		return &id
	}

	f.SprintID = optionalID("sprint_id")
	f.AssigneeID = optionalID("assignee_id")
	f.LabelID = optionalID("label_id")
	f.ParentID = optionalID("parent_id")

	if raw := values.Get("backlog"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fields["query.backlog"] = "must be a boolean"
		}
		f.Backlog = b
	}
	if raw := values.Get("status"); raw != "" {
		f.Status = ticket.Status(raw)
		if !f.Status.IsValid() {
			fields["query.status"] = "invalid: " + strconv.Quote(raw)
		}
	}
	if raw := values.Get("type"); raw != "" {
		f.Type = ticket.Type(raw)
		if !f.Type.IsValid() {
			fields["query.type"] = "invalid: " + strconv.Quote(raw)
		}
	}

	if len(fields) > 0 {
		return ticket.Filter{}, &domain.ValidationError{Fields: fields}
	}
	return f, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
