package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/rs/cors"
	"github.com/shandysiswandi/simpleauth/internal/pkg/goroutine"
	"github.com/shandysiswandi/simpleauth/internal/pkg/instrument"
	"github.com/shandysiswandi/simpleauth/internal/pkg/jwt"
	"github.com/shandysiswandi/simpleauth/internal/pkg/router"
	"github.com/shandysiswandi/simpleauth/internal/pkg/uid"
	"github.com/shandysiswandi/simpleauth/internal/pkg/validator"
)

// ErrSecretKeyRequired is returned when no signing secret is configured.
var ErrSecretKeyRequired = errors.New("SECRET_KEY environment variable is required")

func (a *App) initInstrument() error {
	ins, err := instrument.New(a.ctx, &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("app.env"),
		LogLevel:         a.config.GetString("instrument.log_level"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		return err
	}

	a.ins = ins
	return nil
}

func (a *App) initLibraries() error {
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))

	v, err := validator.NewV10Validator()
	if err != nil {
		return err
	}
	a.validator = v

	return nil
}

func (a *App) initJWT() error {
	secret := a.config.GetString("jwt.secret")
	if secret == "" {
		return ErrSecretKeyRequired
	}

	signer, err := jwt.NewHS256(jwt.Config{
		Secret: []byte(secret),
		Issuer: a.config.GetString("jwt.issuer"),
		Clock:  a.clock,
	})
	if err != nil {
		return err
	}

	a.jwt = signer
	return nil
}

func (a *App) initHTTPServer() error {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		JWT:        a.jwt,
		Instrument: a.ins,
	})

	withCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", router.HeaderCorrelationID},
		ExposedHeaders: []string{router.HeaderCorrelationID},
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr: net.JoinHostPort(
			a.config.GetString("app.server.http.host"),
			strconv.Itoa(a.config.GetInt("app.server.http.port")),
		),
		Handler:           withCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}

	return nil
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
