package app

import (
	"github.com/shandysiswandi/simpleauth/internal/health"
	"github.com/shandysiswandi/simpleauth/internal/token"
)

func (a *App) initModules() error {
	if err := token.New(token.Dependency{
		Router:     a.router,
		Instrument: a.ins,
		Validator:  a.validator,
		JWT:        a.jwt,
	}); err != nil {
		return err
	}

	return health.New(health.Dependency{
		Router:      a.router,
		Clock:       a.clock,
		Validator:   a.validator,
		StartedAt:   a.startedAt,
		Environment: a.config.GetString("app.env"),
	})
}
