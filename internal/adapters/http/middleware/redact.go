package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders lists lowercase header names that carry credentials and
// must never reach the logs.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// RedactHeaders converts headers into slog attributes sorted by name.
// Sensitive values are replaced with "[REDACTED]" and multi-value headers
// are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		value := redacted
		if !sensitiveHeaders[strings.ToLower(key)] {
			value = strings.Join(headers[key], ",")
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
