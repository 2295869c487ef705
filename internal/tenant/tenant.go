package tenant

import "strings"

// Header carries the tenant identity, set by the upstream gateway.
const Header = "X-Tenant-Id"

// Resolve picks the tenant id out of a raw X-Tenant-Id header value.
// Gateways may stack values comma-separated; the first non-empty token
// wins. An empty or blank header resolves to the fallback.
func Resolve(headerValue, fallback string) string {
	v := strings.TrimSpace(headerValue)
	if v == "" {
		return fallback
	}

	for _, part := range strings.Split(v, ",") {
		if t := strings.TrimSpace(part); t != "" {
			return t
		}
	}

	return fallback
}
