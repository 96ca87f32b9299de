package jwt

import (
	"context"
	"errors"
	"time"
)

const (
	// ClaimIssuer is the registered issuer claim name.
	ClaimIssuer = "iss"
	// ClaimIssuedAt is the registered issued-at claim name, in seconds.
	ClaimIssuedAt = "iat"
	// ClaimExpiresAt is the registered expiration claim name, in seconds.
	ClaimExpiresAt = "exp"
	// ClaimNotBefore is the registered not-before claim name, in seconds.
	ClaimNotBefore = "nbf"
	// ClaimTimestamp is the server time in milliseconds merged into every token.
	ClaimTimestamp = "timestamp"

	// DefaultIssuer is the issuer stamped on tokens when none is configured.
	DefaultIssuer = "simple-auth"
)

var (
	// ErrInvalidSigningMethod is returned when the JWT signing method is not supported.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyEmpty is returned when no signing secret is configured.
	ErrSigningKeyEmpty = errors.New("JWT signing secret must not be empty")

	// ErrTokenExpired is returned when the token carries an exp claim in the past.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidClaim is returned by Generate when a caller claim could never
	// pass verification, such as a non-numeric exp.
	ErrInvalidClaim = errors.New("invalid claim")
)

// numericDateClaims must hold JSON numbers when a caller supplies them.
var numericDateClaims = []string{ClaimExpiresAt, ClaimNotBefore, ClaimIssuedAt}

// JWT defines the operations needed by the app: generate and verify a token.
type JWT interface {
	// Generate signs payload merged with the server claims.
	Generate(payload map[string]any) (string, error)
	// Verify checks signature and issuer and returns the decoded claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is stamped on generated tokens and required on verified ones.
	Issuer string
	// Clock provides the current time source.
	Clock clocker
}

// Claims is the decoded payload of a verified token.
type Claims map[string]any

// Issuer returns the iss claim, or "" when absent.
func (c Claims) Issuer() string {
	iss, _ := c[ClaimIssuer].(string)
	return iss
}

// Timestamp returns the server timestamp claim in milliseconds.
func (c Claims) Timestamp() (int64, bool) {
	switch v := c[ClaimTimestamp].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

// GetAuth returns the JWT claims stored in the context, if any.
func GetAuth(ctx context.Context) Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return clm
}

// SetAuth stores JWT claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
