package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/simpleauth/internal/pkg/goerror"
	"github.com/shandysiswandi/simpleauth/internal/pkg/jwt"
)

type GenerateInput struct {
	Payload map[string]any
}

type GenerateOutput struct {
	Token string
}

func (s *Usecase) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	ctx, span := s.startSpan(ctx, "Generate")
	defer span.End()

	slog.InfoContext(ctx, "generate a token", "claims", len(in.Payload))

	token, err := s.jwt.Generate(in.Payload)
	if errors.Is(err, jwt.ErrInvalidClaim) {
		slog.WarnContext(ctx, "payload rejected", "error", err)
		return nil, goerror.NewInvalidFormat(err.Error())
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign token", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GenerateOutput{Token: token}, nil
}
