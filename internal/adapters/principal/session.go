package principal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/platform/config"
	"github.com/jsamuelsen11/sprintboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// DefaultSessionCookie is forwarded when auth.session.cookie is empty.
const DefaultSessionCookie = "session"

// maxErrorBodySize limits how much of a failed introspection response is read.
const maxErrorBodySize = 1 << 16

var (
	_ ports.PrincipalResolver = (*SessionResolver)(nil)
	_ ports.HealthChecker     = (*SessionResolver)(nil)
)

// sessionDTO is the introspection response body.
type sessionDTO struct {
	Subject string `json:"subject"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// SessionResolver forwards the caller's session cookie to a remote
// introspection endpoint. The underlying httpclient.Client provides retry,
// circuit breaking and rate limiting.
type SessionResolver struct {
	client *httpclient.Client
	path   string
	cookie string
	logger *slog.Logger
}

// NewSessionResolver creates a SessionResolver calling cfg.Path on client.
func NewSessionResolver(client *httpclient.Client, cfg *config.SessionConfig, logger *slog.Logger) *SessionResolver {
	cookie := cfg.Cookie
	if cookie == "" {
		cookie = DefaultSessionCookie
	}
	return &SessionResolver{client: client, path: cfg.Path, cookie: cookie, logger: logger}
}

// Resolve implements ports.PrincipalResolver. A missing cookie, or a 401,
// 403 or 404 from the introspection endpoint, is ErrUnauthenticated. Any
// other failure is INTERNAL so the caller sees a 500 rather than a 401.
func (s *SessionResolver) Resolve(r *http.Request) (*user.Principal, error) {
	c, err := r.Cookie(s.cookie)
	if err != nil || c.Value == "" {
		return nil, ports.ErrUnauthenticated
	}

	ctx := r.Context()
	req, err := s.client.NewRequest(ctx, http.MethodGet, s.path, nil)
	if err != nil {
		return nil, domain.Internal(err, "building session request")
	}
	req.AddCookie(&http.Cookie{Name: s.cookie, Value: c.Value})
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		// Do returns the last response alongside the error once retries on a
		// 5xx are exhausted.
		if resp != nil {
			defer s.closeBody(ctx, resp)
			return nil, s.translateStatus(ctx, resp)
		}
		s.logger.ErrorContext(ctx, "session introspection failed",
			slog.String("url", req.URL.Redacted()),
			slog.String("error", err.Error()),
		)
		return nil, domain.Internal(err, "session service unavailable")
	}
	defer s.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return nil, s.translateStatus(ctx, resp)
	}

	var dto sessionDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, domain.Internal(err, "decoding session response")
	}
	if dto.Subject == "" {
		return nil, fmt.Errorf("%w: session has no subject", ports.ErrUnauthenticated)
	}

	return &user.Principal{Subject: dto.Subject, Name: dto.Name, Email: dto.Email}, nil
}

// translateStatus maps a non-200 introspection response.
func (s *SessionResolver) translateStatus(ctx context.Context, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return ports.ErrUnauthenticated
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	s.logger.ErrorContext(ctx, "unexpected session status",
		slog.Int("status", resp.StatusCode),
		slog.Int("body_bytes", len(body)),
	)
	return domain.Internal(fmt.Errorf("session service returned %d", resp.StatusCode), "session service unavailable")
}

func (s *SessionResolver) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		s.logger.WarnContext(ctx, "failed to close response body", slog.String("error", err.Error()))
	}
}

// Name implements ports.HealthChecker.
func (s *SessionResolver) Name() string {
	return s.client.Name()
}

// HealthCheck reports the introspection endpoint's availability from the
// client's circuit breaker; no request is made.
func (s *SessionResolver) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}
