package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/shandysiswandi/simpleauth/internal/pkg/goerror"
)

// maxBodyBytes caps the JSON bodies the service accepts.
const maxBodyBytes = 100 * 1024

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// DecodeObject decodes the body as a single JSON object into a generic map.
//
// An empty body, or one sent with a non-JSON Content-Type, yields an empty
// map. A missing Content-Type is decoded as JSON. Numbers are kept as
// json.Number so the caller's values survive re-encoding unchanged. Malformed
// JSON, trailing data and non-object values are rejected as an invalid format.
func (r *Request) DecodeObject() (map[string]any, error) {
	if r == nil || r.Body == nil || !hasJSONBody(r.Header.Get("Content-Type")) {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}
	if len(raw) > maxBodyBytes {
		return nil, goerror.NewPayloadTooLarge()
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	if raw[0] != '{' {
		return nil, goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	if obj == nil {
		obj = map[string]any{}
	}

	return obj, nil
}

func hasJSONBody(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
