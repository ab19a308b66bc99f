package keyring

import "strings"

// NormalizePrefix canonicalizes a user-supplied path prefix so it has exactly
// one leading and one trailing '/'. It is pure and idempotent:
// NormalizePrefix(NormalizePrefix(p)) == NormalizePrefix(p).
// Returns ErrEmptyPrefix when nothing remains after trimming.
func NormalizePrefix(prefix string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(prefix), "/")
	if trimmed == "" {
		return "", ErrEmptyPrefix
	}
	return "/" + trimmed + "/", nil
}
