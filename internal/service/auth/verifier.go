package auth

import (
	"context"
	"net/http"
	"strings"
)

// Claims is the decoded, verified payload of a bearer credential.
type Claims map[string]any

// Permissions returns the claims' permissions list. The second return
// value reports whether the permissions key was present at all, which
// callers use to distinguish a missing claim from an empty grant.
func (c Claims) Permissions() ([]string, bool) {
	raw, ok := c["permissions"]
	if !ok {
		return nil, false
	}

	switch value := raw.(type) {
	case []string:
		return value, true
	case []any:
		permissions := make([]string, 0, len(value))
		for _, p := range value {
			if s, ok := p.(string); ok {
				permissions = append(permissions, s)
			}
		}
		return permissions, true
	default:
		return nil, true
	}
}

// TokenVerifier validates a bearer token against the identity provider
// and returns its claims.
type TokenVerifier interface {
	// VerifyToken checks the token's signature, expiry, audience and
	// issuer. On failure it returns one of the categorized *Error
	// values from this package.
	VerifyToken(ctx context.Context, token string) (Claims, error)
}

// BearerToken extracts the token from the request's Authorization
// header. The header must consist of exactly two space-separated
// parts whose first is "bearer" in any case.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(header)
	switch {
	case len(parts) == 0:
		return "", ErrNotBearer
	case !strings.EqualFold(parts[0], "bearer"):
		return "", ErrNotBearer
	case len(parts) == 1:
		return "", ErrTokenMissing
	case len(parts) > 2:
		return "", ErrHeaderMalformed
	}

	return parts[1], nil
}

// CheckPermission verifies that the claims grant the given permission.
// Claims without a permissions list fail with ErrPermissionsMissing;
// claims whose list lacks the permission fail with ErrPermissionNotFound.
func CheckPermission(permission string, claims Claims) error {
	permissions, ok := claims.Permissions()
	if !ok {
		return ErrPermissionsMissing
	}

	for _, granted := range permissions {
		if granted == permission {
			return nil
		}
	}
	return ErrPermissionNotFound
}
