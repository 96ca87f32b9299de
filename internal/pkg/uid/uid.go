// Package uid generates identifiers used by the HTTP layer.
package uid

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}
