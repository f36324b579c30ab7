// Package auth authenticates bearer credentials against an external
// identity provider and checks permission claims.
package auth

import "net/http"

// Error is a categorized authentication/authorization failure. Code is
// the provider-style failure category and Status the HTTP status the
// failure maps to.
type Error struct {
	Code        string
	Description string
	Status      int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Code + ": " + e.Description
}

// Failure categories. These map to exact HTTP statuses: header and
// token failures are 401, a missing permissions claim is 400 and an
// insufficient permission is 403.
var (
	// ErrMissingHeader is returned when no Authorization header is present.
	ErrMissingHeader = &Error{
		Code:        "authorization_header_missing",
		Description: "Authorization header is expected.",
		Status:      http.StatusUnauthorized,
	}

	// ErrNotBearer is returned when the header scheme is not "Bearer".
	ErrNotBearer = &Error{
		Code:        "invalid_header",
		Description: `Authorization header must start with "Bearer".`,
		Status:      http.StatusUnauthorized,
	}

	// ErrTokenMissing is returned when the header has a scheme but no token.
	ErrTokenMissing = &Error{
		Code:        "invalid_header",
		Description: "Token not found.",
		Status:      http.StatusUnauthorized,
	}

	// ErrHeaderMalformed is returned when the header has more than two parts.
	ErrHeaderMalformed = &Error{
		Code:        "invalid_header",
		Description: "Authorization header must be bearer token.",
		Status:      http.StatusUnauthorized,
	}

	// ErrKeyNotFound is returned when the token's key ID is absent or
	// does not match any of the provider's published keys.
	ErrKeyNotFound = &Error{
		Code:        "invalid_header",
		Description: "Unable to find the appropriate key.",
		Status:      http.StatusUnauthorized,
	}

	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = &Error{
		Code:        "token_expired",
		Description: "Token expired.",
		Status:      http.StatusUnauthorized,
	}

	// ErrInvalidClaims is returned when audience or issuer claims mismatch.
	ErrInvalidClaims = &Error{
		Code:        "invalid_claims",
		Description: "Incorrect claims. Please, check the audience and issuer.",
		Status:      http.StatusUnauthorized,
	}

	// ErrTokenInvalid is returned on any other token decode failure.
	ErrTokenInvalid = &Error{
		Code:        "invalid_header",
		Description: "Unable to parse authentication token.",
		Status:      http.StatusUnauthorized,
	}

	// ErrPermissionsMissing is returned when the verified claims carry
	// no permissions list at all.
	ErrPermissionsMissing = &Error{
		Code:        "invalid_claims",
		Description: "Permissions not included in JWT.",
		Status:      http.StatusBadRequest,
	}

	// ErrPermissionNotFound is returned when the required permission is
	// not among the granted ones.
	ErrPermissionNotFound = &Error{
		Code:        "unauthorized",
		Description: "Permission not found.",
		Status:      http.StatusForbidden,
	}
)
