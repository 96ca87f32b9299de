package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/simpleauth/internal/pkg/clock"
)

const StatusOK = "ok"

type Usecase struct {
	clock     clock.Clocker
	startedAt time.Time
	env       string
}

type Dependency struct {
	Clock       clock.Clocker
	StartedAt   time.Time
	Environment string
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		clock:     dep.Clock,
		startedAt: dep.StartedAt,
		env:       dep.Environment,
	}
}

type HealthOutput struct {
	Status      string
	Now         time.Time
	Uptime      time.Duration
	Environment string
}

// Health never fails; a process able to answer is alive.
func (s *Usecase) Health(_ context.Context) *HealthOutput {
	now := s.clock.Now()

	return &HealthOutput{
		Status:      StatusOK,
		Now:         now,
		Uptime:      max(now.Sub(s.startedAt), 0),
		Environment: s.env,
	}
}
