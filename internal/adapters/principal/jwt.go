package principal

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/platform/config"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

var _ ports.PrincipalResolver = (*JWTResolver)(nil)

// Claims are the token claims read by JWTResolver.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// JWTResolver verifies HS256 bearer tokens from the Authorization header.
type JWTResolver struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTResolver creates a JWTResolver from cfg. Issuer and audience are
// checked only when configured; expiry is always required.
func NewJWTResolver(cfg *config.JWTConfig) (*JWTResolver, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt: secret is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &JWTResolver{secret: []byte(cfg.Secret), parser: jwt.NewParser(opts...)}, nil
}

// Resolve implements ports.PrincipalResolver. Every token failure, whether
// malformed, expired or signed with another key, is ErrUnauthenticated.
func (j *JWTResolver) Resolve(r *http.Request) (*user.Principal, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return nil, ports.ErrUnauthenticated
	}

	claims := &Claims{}
	_, err := j.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ports.ErrUnauthenticated)
	}

	return &user.Principal{Subject: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
