package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hmekki/casting-api/internal/config"
	"github.com/hmekki/casting-api/internal/platform/logger"
)

// jwks is the provider's published key set document.
type jwks struct {
	Keys []jwksKey `json:"keys"`
}

// jwksKey is a single RSA signing key in JWK form.
type jwksKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKSVerifier implements TokenVerifier against an identity provider
// that publishes its signing keys at
// https://<domain>/.well-known/jwks.json (the Auth0 layout).
type JWKSVerifier struct {
	domain     string
	algorithms []string
	audience   string
	client     *http.Client
}

var _ TokenVerifier = (*JWKSVerifier)(nil)

// NewJWKSVerifier creates a verifier from the auth configuration.
func NewJWKSVerifier(cfg config.AuthConfig) *JWKSVerifier {
	return &JWKSVerifier{
		domain:     cfg.Domain,
		algorithms: cfg.Algorithms,
		audience:   cfg.Audience,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyToken implements TokenVerifier. The key set is fetched per
// call; key rotation at the provider therefore takes effect
// immediately at the cost of one HTTPS round trip per verification.
func (v *JWKSVerifier) VerifyToken(ctx context.Context, token string) (Claims, error) {
	log := logger.FromContext(ctx)

	keySet, err := v.fetchKeySet(ctx)
	if err != nil {
		log.Error("failed to fetch provider key set", slog.String("error", err.Error()))
		return nil, ErrKeyNotFound
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods(v.algorithms),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer("https://"+v.domain+"/"),
		jwt.WithExpirationRequired(),
	)

	claims := jwt.MapClaims{}
	_, err = parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		kid, ok := t.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, ErrKeyNotFound
		}
		return rsaKeyForKid(keySet, kid)
	})
	if err != nil {
		return nil, mapTokenError(ctx, err)
	}

	return Claims(claims), nil
}

// fetchKeySet downloads and decodes the provider's JWKS document.
func (v *JWKSVerifier) fetchKeySet(ctx context.Context) (*jwks, error) {
	url := "https://" + v.domain + "/.well-known/jwks.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build key set request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key set: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("key set endpoint returned status %d", resp.StatusCode)
	}

	var keySet jwks
	if err := json.NewDecoder(resp.Body).Decode(&keySet); err != nil {
		return nil, fmt.Errorf("failed to decode key set: %w", err)
	}

	return &keySet, nil
}

// rsaKeyForKid finds the published key matching kid and builds the
// RSA public key from its modulus and exponent.
func rsaKeyForKid(keySet *jwks, kid string) (*rsa.PublicKey, error) {
	for _, key := range keySet.Keys {
		if key.Kid != kid {
			continue
		}

		n, err := base64.RawURLEncoding.DecodeString(key.N)
		if err != nil {
			return nil, fmt.Errorf("failed to decode key modulus: %w", err)
		}
		e, err := base64.RawURLEncoding.DecodeString(key.E)
		if err != nil {
			return nil, fmt.Errorf("failed to decode key exponent: %w", err)
		}

		return &rsa.PublicKey{
			N: new(big.Int).SetBytes(n),
			E: int(new(big.Int).SetBytes(e).Int64()),
		}, nil
	}

	return nil, ErrKeyNotFound
}

// mapTokenError translates jwt parsing failures into the categorized
// errors this package exposes.
func mapTokenError(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	var authErr *Error
	switch {
	case errors.Is(err, ErrKeyNotFound):
		authErr = ErrKeyNotFound
	case errors.Is(err, jwt.ErrTokenExpired):
		authErr = ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenInvalidIssuer):
		authErr = ErrInvalidClaims
	default:
		authErr = ErrTokenInvalid
	}

	log.Debug("token verification failed",
		slog.String("code", authErr.Code),
		slog.String("error", err.Error()))
	return authErr
}
