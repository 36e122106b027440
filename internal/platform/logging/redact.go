package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Attribute keys whose values are always masked, whatever they contain.
var secretKeys = []string{
	"authorization",
	"cookie",
	"dsn",
	"password",
	"secret",
	"session",
	"token",
	"x-api-key",
}

var (
	// Bearer credentials pasted into free text.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`)

	// Three base64url segments of at least ten characters: a JWT.
	jwtPattern = regexp.MustCompile(`[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}`)

	// Passwords embedded in connection URLs, e.g. postgres://app:pw@db/sprintboard.
	urlPasswordPattern = regexp.MustCompile(`[a-z][a-z0-9+.\-]*://[^:/@\s]+:[^@\s]+@`)

	// key=value DSN form used by lib/pq.
	dsnPasswordPattern = regexp.MustCompile(`(?i)password\s*=\s*\S+`)
)

func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(secretKeys)+6)
	for _, k := range secretKeys {
		opts = append(opts, masq.WithFieldName(k))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("jwt_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(urlPasswordPattern),
		masq.WithRegex(dsnPasswordPattern),
	)
	return masq.New(opts...)
}
