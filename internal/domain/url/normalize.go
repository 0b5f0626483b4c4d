// Package url derives domain keys from page URLs.
package url

import (
	"net/url"
	"strings"
)

const wwwPrefix = "www."

// DefaultRestrictedSchemes lists URL prefixes where no renderer can attach.
var DefaultRestrictedSchemes = []string{
	"chrome://",
	"chrome-extension://",
	"chrome-search://",
	"devtools://",
	"edge://",
	"brave://",
	"about:",
	"view-source:",
	"data:",
}

// NormalizeDomain maps a hostname to its domain key by stripping exactly one
// leading "www." label. The match is case-sensitive on the literal prefix.
// It is not idempotent for "www.www." hosts, so a key is derived exactly once:
// callers holding a domain key never pass it through here again.
func NormalizeDomain(hostname string) string {
	return strings.TrimPrefix(hostname, wwwPrefix)
}

// DomainKey extracts the normalized domain key from a URL string.
// The host is lowercased and the port is dropped so localhost:8080 and
// localhost share one key.
// Returns "" when the URL cannot be parsed or has no host.
func DomainKey(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}
	return NormalizeDomain(host)
}

// DomainKeyFromInput accepts either a bare domain or a URL, as typed on the
// command line, and returns its domain key.
func DomainKeyFromInput(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if hasScheme(input) {
		return DomainKey(input)
	}
	if strings.ContainsAny(input, "/:?#") {
		return DomainKey("https://" + input)
	}
	return NormalizeDomain(strings.ToLower(input))
}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	if hasScheme(input) {
		return input
	}
	if input == "localhost" || strings.HasPrefix(input, "localhost:") {
		return "http://" + input
	}
	if looksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// looksLikeURL reports whether input reads as a host rather than free text.
func looksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasScheme(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// IsRestrictedURL reports whether rawURL uses one of the restricted scheme prefixes.
// An empty list falls back to DefaultRestrictedSchemes.
func IsRestrictedURL(rawURL string, schemes []string) bool {
	if len(schemes) == 0 {
		schemes = DefaultRestrictedSchemes
	}
	lower := strings.ToLower(rawURL)
	for _, prefix := range schemes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}

func hasScheme(input string) bool {
	switch {
	case strings.HasPrefix(input, "http://"):
		return true
	case strings.HasPrefix(input, "https://"):
		return true
	case strings.HasPrefix(input, "file://"):
		return true
	case strings.HasPrefix(input, "about:"):
		return true
	}
	return false
}
