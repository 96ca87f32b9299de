package inbound

import (
	"context"

	"github.com/shandysiswandi/simpleauth/internal/health/usecase"
	"github.com/shandysiswandi/simpleauth/internal/pkg/router"
)

type uc interface {
	Health(ctx context.Context) *usecase.HealthOutput
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/health", end.Health)
}
