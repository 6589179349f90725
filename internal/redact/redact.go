// Package redact removes sensitive information from strings before they are
// logged. Error messages from drivers and libraries can embed connection
// strings, credentials, session tokens, or email addresses; everything logged
// through the API layer passes through here first.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedConnPlaceholder       = "[REDACTED_CONN]"
)

// Precompiled patterns, ordered most specific first.
var replacements = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	// Database connection strings with inline credentials
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql|mongodb)://[^@\s]+@[^\s]+`), RedactedConnPlaceholder},

	// JWT tokens (three base64url segments, first two starting with eyJ)
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedTokenPlaceholder},

	// bcrypt digests
	{regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`), RedactedCredentialPlaceholder},

	// password=... / secret=... style fragments
	{regexp.MustCompile(`(?i)(password|passwd|pwd|secret)([=:\s]['"]?)[^'"&\s]{3,}`), "$1$2" + RedactedCredentialPlaceholder},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
}

// String returns s with all recognized sensitive fragments replaced.
func String(s string) string {
	for _, r := range replacements {
		s = r.pattern.ReplaceAllString(s, r.placeholder)
	}
	return s
}

// Error returns the redacted message of err, or "" for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
