package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrement(t *testing.T) {
	tests := []struct {
		version string
		bump    Bump
		want    string
	}{
		{version: "1.2.3", bump: BumpPatch, want: "1.2.4"},
		{version: "1.2.3", bump: BumpMinor, want: "1.3.0"},
		{version: "1.2.3", bump: BumpMajor, want: "2.0.0"},
		{version: "0.0.0", bump: BumpPatch, want: "0.0.1"},
		{version: "0.9.9", bump: BumpMinor, want: "0.10.0"},
		{version: "9.99.999", bump: BumpMajor, want: "10.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.version+"/"+string(tt.bump), func(t *testing.T) {
			got, err := Increment(tt.version, tt.bump)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIncrement_InvalidVersion(t *testing.T) {
	for _, v := range []string{"", "1", "1.2", "1.2.3.4", "v1.2.3", "1.2.x", "1.-2.3", "1.2.3-rc.1", "1.2.3+build", "01.2.3", "1.02.3", "1..3", "18446744073709551616.0.0"} {
		t.Run(v, func(t *testing.T) {
			_, err := Increment(v, BumpPatch)
			assert.ErrorIs(t, err, ErrInvalidVersion)
		})
	}
}

func TestIncrement_Overflow(t *testing.T) {
	tests := []struct {
		version string
		bump    Bump
	}{
		{version: "1.2.18446744073709551615", bump: BumpPatch},
		{version: "1.18446744073709551615.0", bump: BumpMinor},
		{version: "18446744073709551615.0.0", bump: BumpMajor},
	}

	for _, tt := range tests {
		t.Run(tt.version+"/"+string(tt.bump), func(t *testing.T) {
			got, err := Increment(tt.version, tt.bump)
			assert.ErrorIs(t, err, ErrInvalidVersion)
			assert.Empty(t, got)
		})
	}

	got, err := Increment("18446744073709551615.1.2", BumpPatch)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615.1.3", got)
}

func TestIncrement_InvalidBump(t *testing.T) {
	_, err := Increment("1.2.3", Bump("huge"))
	assert.ErrorIs(t, err, ErrInvalidBump)
}

func TestParseBump(t *testing.T) {
	tests := []struct {
		in      string
		want    Bump
		wantErr bool
	}{
		{in: "", want: BumpPatch},
		{in: "patch", want: BumpPatch},
		{in: "minor", want: BumpMinor},
		{in: "major", want: BumpMajor},
		{in: "Major", wantErr: true},
		{in: "premajor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBump(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBump)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
