package release

import (
	"errors"
	"fmt"
	"math"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
)

// Bump names which semantic version component to increment.
type Bump string

const (
	BumpMajor Bump = "major"
	BumpMinor Bump = "minor"
	BumpPatch Bump = "patch"
)

// Bumps lists the accepted bump types.
var Bumps = []Bump{BumpMajor, BumpMinor, BumpPatch}

var (
	// ErrInvalidBump is returned for a bump type outside Bumps.
	ErrInvalidBump = errors.New("release type must be one of major, minor or patch")

	// ErrInvalidVersion is returned when a version is not major.minor.patch.
	ErrInvalidVersion = errors.New("version must be in major.minor.patch format")
)

// ParseBump maps a command argument to a Bump; "" means patch.
func ParseBump(s string) (Bump, error) {
	if s == "" {
		return BumpPatch, nil
	}

	b := Bump(s)
	if !lo.Contains(Bumps, b) {
		return "", fmt.Errorf("%w, got %q", ErrInvalidBump, s)
	}
	return b, nil
}

// parseVersion accepts exactly major.minor.patch: no "v" prefix, no leading
// zeros, no pre-release or build metadata.
func parseVersion(v string) (*semver.Version, error) {
	sv, err := semver.StrictNewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidVersion, v)
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidVersion, v)
	}
	return sv, nil
}

// Increment returns version with the bumped component incremented and every
// lower component reset to zero. A component already at math.MaxUint64
// cannot be bumped.
func Increment(version string, b Bump) (string, error) {
	v, err := parseVersion(version)
	if err != nil {
		return "", err
	}

	var (
		component uint64
		next      semver.Version
	)
	switch b {
	case BumpMajor:
		component, next = v.Major(), v.IncMajor()
	case BumpMinor:
		component, next = v.Minor(), v.IncMinor()
	case BumpPatch:
		component, next = v.Patch(), v.IncPatch()
	default:
		return "", fmt.Errorf("%w, got %q", ErrInvalidBump, b)
	}

	if component == math.MaxUint64 {
		return "", fmt.Errorf("%w, %s component of %q overflows", ErrInvalidVersion, b, version)
	}

	return next.String(), nil
}
