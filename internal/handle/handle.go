// Package handle derives URL-safe vault handles from display names.
package handle

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxLength is the maximum length of a handle, suffix included
	MaxLength = 50

	// MaxHandleAttempts bounds how many suffixed candidates are tried on a unique violation
	MaxHandleAttempts = 10

	fallbackPrefix = "vault-"
)

// Normalize lower-cases the input, collapses every run of characters outside
// [a-z0-9] into a single hyphen, trims hyphens from both ends and truncates
// the result to MaxLength. The result may be empty.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return truncate(b.String(), MaxLength)
}

// Generate returns the base handle for a vault. An explicit handle wins over
// the name; if neither normalizes to anything, a random fallback is used.
func Generate(name string, explicit *string) string {
	if explicit != nil {
		if h := Normalize(*explicit); h != "" {
			return h
		}
	}
	if h := Normalize(name); h != "" {
		return h
	}
	return Fallback()
}

// Fallback returns "vault-" followed by 8 random hex characters
func Fallback() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fallbackPrefix + id[:8]
}

// WithSuffix returns the n-th candidate for base: base itself for n <= 1,
// otherwise base-n with the base shortened so the result fits MaxLength.
func WithSuffix(base string, n int) string {
	if n <= 1 {
		return truncate(base, MaxLength)
	}
	suffix := "-" + strconv.Itoa(n)
	return truncate(base, MaxLength-len(suffix)) + suffix
}

func truncate(s string, max int) string {
	if len(s) > max {
		s = s[:max]
	}
	return strings.Trim(s, "-")
}
