package health

import (
	"time"

	"github.com/shandysiswandi/simpleauth/internal/health/inbound"
	"github.com/shandysiswandi/simpleauth/internal/health/usecase"
	"github.com/shandysiswandi/simpleauth/internal/pkg/clock"
	"github.com/shandysiswandi/simpleauth/internal/pkg/router"
	"github.com/shandysiswandi/simpleauth/internal/pkg/validator"
)

type Dependency struct {
	Router      *router.Router      `validate:"required"`
	Clock       clock.Clocker       `validate:"required"`
	Validator   validator.Validator `validate:"required"`
	StartedAt   time.Time           `validate:"required"`
	Environment string              `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Clock:       dep.Clock,
		StartedAt:   dep.StartedAt,
		Environment: dep.Environment,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
