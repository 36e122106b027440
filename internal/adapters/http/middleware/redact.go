package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// credentialHeaders are logged without their values. Keys are canonical.
var credentialHeaders = map[string]bool{
	"Authorization":       true,
	"Proxy-Authorization": true,
	"Set-Cookie":          true,
	"X-Api-Key":           true,
}

// RedactHeaders turns h into log attributes sorted by name. Credential
// headers are masked; cookies keep their names so a missing session cookie
// is still visible in logs.
func RedactHeaders(h http.Header) []slog.Attr {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		canon := http.CanonicalHeaderKey(k)
		switch {
		case credentialHeaders[canon]:
			attrs = append(attrs, slog.String(k, redacted))
		case canon == "Cookie":
			attrs = append(attrs, slog.String(k, maskCookies(h.Values(k))))
		default:
			attrs = append(attrs, slog.String(k, strings.Join(h.Values(k), ",")))
		}
	}
	return attrs
}

func maskCookies(lines []string) string {
	var names []string
	for _, line := range lines {
		for part := range strings.SplitSeq(line, ";") {
			name, _, _ := strings.Cut(strings.TrimSpace(part), "=")
			if name != "" {
				names = append(names, name+"="+redacted)
			}
		}
	}
	return strings.Join(names, "; ")
}
