package jwt

import (
	"encoding/json"
	"errors"
	"fmt"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
)

// Symmetric implements JWT signing and verification using an HMAC secret.
type Symmetric struct {
	secret []byte
	issuer string
	clock  clocker
}

// NewHS256 constructs a Symmetric JWT implementation using HS256.
func NewHS256(cfg Config) (*Symmetric, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrSigningKeyEmpty
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}

	return &Symmetric{
		secret: cfg.Secret,
		issuer: issuer,
		clock:  cfg.Clock,
	}, nil
}

// Generate signs payload as-is, plus timestamp (ms) and iss, which always
// overwrite caller values. iat is added only when the caller did not set it.
// Caller exp, nbf and iat must be numbers, otherwise ErrInvalidClaim.
func (s *Symmetric) Generate(payload map[string]any) (string, error) {
	for _, name := range numericDateClaims {
		v, ok := payload[name]
		if ok && !isNumericDate(v) {
			return "", fmt.Errorf("%w: %s must be a number", ErrInvalidClaim, name)
		}
	}

	now := s.clock.Now()

	server := map[string]any{
		ClaimTimestamp: now.UnixMilli(),
		ClaimIssuer:    s.issuer,
	}
	if _, ok := payload[ClaimIssuedAt]; !ok {
		server[ClaimIssuedAt] = now.Unix()
	}

	claims := libJWT.MapClaims(lo.Assign(payload, server))

	return libJWT.NewWithClaims(libJWT.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a JWT string.
//
// Expiry is not required; exp and nbf are checked only when present.
func (s *Symmetric) Verify(tokenStr string) (Claims, error) {
	claims := libJWT.MapClaims{}

	token, err := libJWT.ParseWithClaims(tokenStr, claims,
		func(t *libJWT.Token) (any, error) {
			if t.Method != libJWT.SigningMethodHS256 {
				return nil, ErrInvalidSigningMethod
			}
			return s.secret, nil
		},
		libJWT.WithIssuer(s.issuer),
		libJWT.WithValidMethods([]string{libJWT.SigningMethodHS256.Alg()}),
		libJWT.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, libJWT.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return Claims(claims), nil
}

func isNumericDate(v any) bool {
	switch n := v.(type) {
	case json.Number:
		_, err := n.Float64()
		return err == nil
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	default:
		return false
	}
}
