package chat

import (
	"os"
	"strings"
)

// EnvKeyName is the process environment variable consulted when the
// application setting carries no key.
const EnvKeyName = "OPENAI_API_KEY"

const maskThreshold = 8

// ResolveCredential returns the active completion API key: the application
// setting wins, the process environment is the fallback. An empty string
// means no credential is configured; this is not an error.
func ResolveCredential(cfg Config) string {
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv(EnvKeyName))
}

// MaskKey returns a preview of a credential that is safe to log or report:
// first and last four characters for keys long enough to stay opaque,
// a literal marker otherwise.
func MaskKey(key string) string {
	switch {
	case key == "":
		return "(missing)"
	case len(key) <= maskThreshold:
		return "(set)"
	default:
		return key[:4] + "…" + key[len(key)-4:]
	}
}
