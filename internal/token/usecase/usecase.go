package usecase

import (
	"context"

	"github.com/shandysiswandi/simpleauth/internal/pkg/instrument"
	"github.com/shandysiswandi/simpleauth/internal/pkg/jwt"
	"go.opentelemetry.io/otel/trace"
)

type Usecase struct {
	jwt jwt.JWT
	ins instrument.Instrumentation
}

type Dependency struct {
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		jwt: dep.JWT,
		ins: dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("token.usecase").Start(ctx, name)
}
