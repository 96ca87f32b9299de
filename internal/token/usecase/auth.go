package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/simpleauth/internal/pkg/goerror"
	"github.com/shandysiswandi/simpleauth/internal/pkg/jwt"
)

type AuthOutput struct {
	Claims jwt.Claims
}

// Auth reports the claims the authentication middleware verified for this
// request.
func (s *Usecase) Auth(ctx context.Context) (*AuthOutput, error) {
	ctx, span := s.startSpan(ctx, "Auth")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		slog.WarnContext(ctx, "no verified claims on request context")
		return nil, goerror.NewBusiness("Authorization failed", goerror.CodeUnauthorized)
	}

	attrs := []any{"issuer", clm.Issuer()}
	if ts, ok := clm.Timestamp(); ok {
		attrs = append(attrs, "issued_ms", ts)
	}
	slog.InfoContext(ctx, "token verified", attrs...)

	return &AuthOutput{Claims: clm}, nil
}
