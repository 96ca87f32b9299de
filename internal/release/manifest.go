package release

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// VersionKey is the manifest field holding the semantic version.
const VersionKey = "version"

// ErrManifest marks failures reading, decoding or writing the manifest.
var ErrManifest = errors.New("manifest")

// Manifest is a top-level JSON object kept as raw bytes, so a rewrite only
// touches the version value and every other field keeps its order and text.
type Manifest struct {
	data []byte
}

// ParseManifest checks that data holds exactly one JSON object with at most
// one version field.
func ParseManifest(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrManifest)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrManifest)
	}

	seen := 0
	root.ForEach(func(key, _ gjson.Result) bool {
		if key.String() == VersionKey {
			seen++
		}
		return true
	})
	if seen > 1 {
		return nil, fmt.Errorf("%w: field %q is repeated", ErrManifest, VersionKey)
	}

	return &Manifest{data: bytes.TrimSpace(data)}, nil
}

// ReadManifest loads and parses the manifest at path.
func ReadManifest(path string) (*Manifest, error) {
	//nolint:gosec // path comes from the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return ParseManifest(data)
}

// Version returns the version field; it must be a JSON string.
func (m *Manifest) Version() (string, error) {
	v := gjson.GetBytes(m.data, VersionKey)
	if !v.Exists() {
		return "", fmt.Errorf("%w: field %q is missing", ErrManifest, VersionKey)
	}
	if v.Type != gjson.String {
		return "", fmt.Errorf("%w: field %q must be a string", ErrManifest, VersionKey)
	}
	return v.String(), nil
}

// SetVersion replaces the version value in place, or appends the field.
func (m *Manifest) SetVersion(v string) error {
	data, err := sjson.SetBytes(m.data, VersionKey, v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifest, err)
	}
	m.data = data
	return nil
}

// MarshalIndent renders the object with two-space indentation and a trailing
// newline.
func (m *Manifest) MarshalIndent() ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, m.data, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// WriteFile renders the manifest to path, keeping the existing file mode.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.MarshalIndent()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifest, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return nil
}
