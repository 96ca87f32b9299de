package release

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/shandysiswandi/simpleauth/internal/pkg/validator"
)

type versionInput struct {
	Version string `json:"version" validate:"required,semver"`
}

type Dependency struct {
	// ManifestPath is passed to git as is and resolved against WorkDir for I/O.
	ManifestPath string              `validate:"required"`
	WorkDir      string              `validate:"omitempty,dir"`
	Git          *Git                `validate:"required"`
	Validator    validator.Validator `validate:"required"`
}

// Publisher bumps the manifest version and records the release in git.
type Publisher struct {
	manifestPath string
	filePath     string
	git          *Git
	validator    validator.Validator
}

func NewPublisher(dep Dependency) (*Publisher, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	filePath := dep.ManifestPath
	if dep.WorkDir != "" && !filepath.IsAbs(filePath) {
		filePath = filepath.Join(dep.WorkDir, filePath)
	}

	return &Publisher{
		manifestPath: dep.ManifestPath,
		filePath:     filePath,
		git:          dep.Git,
		validator:    dep.Validator,
	}, nil
}

// Output describes a completed bump. GitErr is set when the manifest was
// rewritten but a git step failed.
type Output struct {
	Bump     Bump
	Previous string
	Next     string
	GitErr   error
}

// Publish bumps the manifest version by bumpArg ("" means patch), writes the
// manifest, then commits, tags and pushes. Errors returned are fatal and leave
// the manifest untouched; git failures are reported in Output.GitErr.
func (p *Publisher) Publish(ctx context.Context, bumpArg string) (*Output, error) {
	bump, err := ParseBump(bumpArg)
	if err != nil {
		return nil, err
	}

	m, err := ReadManifest(p.filePath)
	if err != nil {
		return nil, err
	}

	current, err := m.Version()
	if err != nil {
		return nil, err
	}

	if err := p.validator.Validate(versionInput{Version: current}); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrManifest, ErrInvalidVersion, err)
	}

	slog.InfoContext(ctx, "current version", "version", current)

	next, err := Increment(current, bump)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	if err := m.SetVersion(next); err != nil {
		return nil, err
	}
	if err := m.WriteFile(p.filePath); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "new version", "version", next, "manifest", p.filePath)

	out := &Output{Bump: bump, Previous: current, Next: next}

	gitErr := p.git.Release(ctx, p.manifestPath, next, func(step string) {
		slog.InfoContext(ctx, "running git step", "step", step)
	})
	if gitErr != nil {
		var ge *GitError
		if errors.As(gitErr, &ge) {
			slog.WarnContext(ctx, "git step failed, version was still updated", "step", ge.Step, "error", ge.Err, "version", next)
		}
		out.GitErr = gitErr
		return out, nil
	}

	slog.InfoContext(ctx, "release published", "version", next, "tag", "v"+next)

	return out, nil
}
