package app

import (
	"os"

	"github.com/shandysiswandi/simpleauth/internal/pkg/config"
)

const defaultConfigPath = "./config/config.yaml"

// Defaults are the values used when neither the config file nor the
// environment provides a key.
var Defaults = map[string]any{
	"app.name":                                    "simple-auth",
	"app.env":                                     "development",
	"app.server.http.host":                        "",
	"app.server.http.port":                        3000,
	"app.server.http.read_timeout_seconds":        10,
	"app.server.http.read_header_timeout_seconds": 5,
	"app.server.http.write_timeout_seconds":       10,
	"app.server.http.idle_timeout_seconds":        60,
	"app.server.max_goroutine":                    0,
	"app.server.cors":                             "*",
	"app.maintenance.endpoints":                   "",
	"jwt.issuer":                                  "simple-auth",
	"instrument.enabled":                          false,
	"instrument.service_name":                     "simple-auth",
	"instrument.service_version":                  "1.0.0",
	"instrument.otlp_endpoint":                    "localhost:4317",
	"instrument.otlp_secure":                      false,
	"instrument.trace_sample_ratio":               1.0,
	"instrument.metric_interval_seconds":          60,
	"instrument.log_level":                        "info",
	"instrument.log_mask_fields":                  "authorization,token,password,secret",
}

// EnvBindings maps config keys to the environment variables that override
// them, first match wins.
var EnvBindings = map[string][]string{
	"jwt.secret":               {"SECRET_KEY"},
	"jwt.issuer":               {"JWT_ISSUER"},
	"app.env":                  {"APP_ENV", "NODE_ENV"},
	"app.server.http.host":     {"HOST"},
	"app.server.http.port":     {"PORT"},
	"app.server.cors":          {"CORS_ORIGINS"},
	"instrument.enabled":       {"OTEL_ENABLED"},
	"instrument.otlp_endpoint": {"OTEL_EXPORTER_OTLP_ENDPOINT"},
	"instrument.log_level":     {"LOG_LEVEL"},
}

func loadConfig() (config.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	return config.NewViper(path, config.WithDefaults(Defaults), config.WithEnv(EnvBindings))
}
