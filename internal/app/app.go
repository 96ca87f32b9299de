package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/shandysiswandi/simpleauth/internal/pkg/clock"
	"github.com/shandysiswandi/simpleauth/internal/pkg/config"
	"github.com/shandysiswandi/simpleauth/internal/pkg/goroutine"
	"github.com/shandysiswandi/simpleauth/internal/pkg/instrument"
	"github.com/shandysiswandi/simpleauth/internal/pkg/jwt"
	"github.com/shandysiswandi/simpleauth/internal/pkg/router"
	"github.com/shandysiswandi/simpleauth/internal/pkg/uid"
	"github.com/shandysiswandi/simpleauth/internal/pkg/validator"
	"go.uber.org/atomic"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	startedAt time.Time

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	jwt       jwt.JWT

	// server
	router     *router.Router
	httpServer *http.Server
	listenErr  *atomic.Error
	stopped    *atomic.Bool

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New loads configuration from CONFIG_PATH and the environment and builds the
// application. Any startup error is fatal.
func New() *App {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	app, err := NewWithConfig(cfg)
	if err != nil {
		slog.Error("failed to init application", "error", err)
		os.Exit(1)
	}

	return app
}

// NewWithConfig builds the application from cfg.
func NewWithConfig(cfg config.Config) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:       ctx,
		cancel:    cancel,
		config:    cfg,
		clock:     clock.New(),
		listenErr: atomic.NewError(nil),
		stopped:   atomic.NewBool(false),
	}
	app.startedAt = app.clock.Now()

	for _, step := range []struct {
		name string
		fn   func() error
	}{
		{name: "instrument", fn: app.initInstrument},
		{name: "libraries", fn: app.initLibraries},
		{name: "jwt", fn: app.initJWT},
		{name: "http server", fn: app.initHTTPServer},
		{name: "modules", fn: app.initModules},
	} {
		if err := step.fn(); err != nil {
			cancel()
			return nil, &InitError{Step: step.name, Err: err}
		}
	}

	app.initClosers()

	return app, nil
}

// InitError reports the startup step that failed.
type InitError struct {
	Step string
	Err  error
}

func (e *InitError) Error() string {
	return "init " + e.Step + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
