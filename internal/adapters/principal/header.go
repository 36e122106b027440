package principal

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// DefaultHeader carries the subject when auth.header_name is empty.
const DefaultHeader = "X-User-ID"

// Optional profile hints sent alongside the subject header.
const (
	headerName  = "X-User-Name"
	headerEmail = "X-User-Email"
)

var _ ports.PrincipalResolver = (*HeaderResolver)(nil)

// HeaderResolver trusts a header set by an authenticating proxy. Only use it
// behind a proxy that strips the header from client requests.
type HeaderResolver struct {
	header string
}

// NewHeaderResolver creates a HeaderResolver reading the subject from
// header, or DefaultHeader when header is empty.
func NewHeaderResolver(header string) *HeaderResolver {
	if header == "" {
		header = DefaultHeader
	}
	return &HeaderResolver{header: header}
}

// Resolve implements ports.PrincipalResolver.
func (h *HeaderResolver) Resolve(r *http.Request) (*user.Principal, error) {
	subject := strings.TrimSpace(r.Header.Get(h.header))
	if subject == "" {
		return nil, ports.ErrUnauthenticated
	}
	return &user.Principal{
		Subject: subject,
		Name:    strings.TrimSpace(r.Header.Get(headerName)),
		Email:   strings.TrimSpace(r.Header.Get(headerEmail)),
	}, nil
}

// Headers lists every request header the resolver reads.
func (h *HeaderResolver) Headers() []string {
	return []string{h.header, headerName, headerEmail}
}
