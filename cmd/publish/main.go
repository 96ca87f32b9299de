// Command publish bumps the manifest version and releases it through git.
//
//	publish [major|minor|patch]
//
// The bump type defaults to patch. A git failure after the manifest was
// rewritten is reported as a warning and does not change the exit status.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
	"github.com/shandysiswandi/simpleauth/internal/pkg/instrument"
	"github.com/shandysiswandi/simpleauth/internal/pkg/validator"
	"github.com/shandysiswandi/simpleauth/internal/release"
)

type options struct {
	Manifest string `env:"PUBLISH_MANIFEST" envDefault:"manifest.json"`
	GitBin   string `env:"PUBLISH_GIT_BIN" envDefault:"git"`
	WorkDir  string `env:"PUBLISH_WORKDIR"`
	LogLevel string `env:"PUBLISH_LOG_LEVEL" envDefault:"info"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	opts, err := env.ParseAs[options]()
	if err != nil {
		slog.Error("failed to parse publish options", "error", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: instrument.ParseLevel(opts.LogLevel),
	})))

	var bump string
	if len(args) > 0 {
		bump = args[0]
	}

	v, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		return 1
	}

	publisher, err := release.NewPublisher(release.Dependency{
		ManifestPath: opts.Manifest,
		WorkDir:      opts.WorkDir,
		Git:          release.NewGit(opts.GitBin, release.NewExecRunner(opts.WorkDir)),
		Validator:    v,
	})
	if err != nil {
		slog.Error("failed to init publisher", "error", err)
		return 1
	}

	out, err := publisher.Publish(ctx, bump)
	if err != nil {
		slog.Error("publish failed", "error", err)
		return 1
	}

	if out.GitErr != nil {
		slog.Warn("version updated without a git release", "version", out.Next)
		return 0
	}

	slog.Info("version published", "from", out.Previous, "to", out.Next)
	return 0
}
