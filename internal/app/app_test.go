package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/shandysiswandi/simpleauth/internal/app"
	"github.com/shandysiswandi/simpleauth/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var httpClient = &http.Client{Timeout: 5 * time.Second}

func newConfig(t *testing.T, yaml string) config.Config {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml), config.WithDefaults(app.Defaults))
	require.NoError(t, err)
	return cfg
}

func startApp(t *testing.T) string {
	t.Helper()

	application, err := app.NewWithConfig(newConfig(t, `
app:
  env: test
jwt:
  secret: integration-secret
instrument:
  log_level: error
`))
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errChan := application.Serve(l)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, application.Stop(ctx))
		assert.ErrorIs(t, <-errChan, http.ErrServerClosed)
	})

	return "http://" + l.Addr().String()
}

func doJSON(t *testing.T, method, url string, body []byte, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestApp_GenerateThenAuth(t *testing.T) {
	// Arrange
	base := startApp(t)

	// Act
	status, gen := doJSON(t, http.MethodPost, base+"/generate", []byte(`{"userId":42,"role":"admin"}`), "")

	// Assert
	require.Equal(t, http.StatusOK, status)
	token, ok := gen["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	status, auth := doJSON(t, http.MethodGet, base+"/auth", nil, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"result": "success"}, auth)
}

func TestApp_AuthFailures(t *testing.T) {
	base := startApp(t)

	status, out := doJSON(t, http.MethodGet, base+"/auth", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, map[string]any{"msg": "Missing Authorization header"}, out)

	status, out = doJSON(t, http.MethodGet, base+"/auth", nil, "eyJhbGciOiJIUzI1NiJ9.e30.invalid")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, out["msg"])
}

func TestApp_Health(t *testing.T) {
	base := startApp(t)

	status, out := doJSON(t, http.MethodGet, base+"/health", nil, "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "test", out["environment"])

	ts, err := time.Parse(time.RFC3339Nano, out["timestamp"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)

	uptime, ok := out["uptime"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, uptime, 0.0)
}

func TestApp_UnknownRoute(t *testing.T) {
	base := startApp(t)

	status, out := doJSON(t, http.MethodGet, base+"/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"msg": "endpoint not found"}, out)

	status, out = doJSON(t, http.MethodGet, base+"/generate", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, map[string]any{"msg": "method not allowed"}, out)
}

func TestNewWithConfig_RequiresSecret(t *testing.T) {
	_, err := app.NewWithConfig(newConfig(t, "app:\n  env: test\n"))

	var initErr *app.InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "jwt", initErr.Step)
	assert.ErrorIs(t, err, app.ErrSecretKeyRequired)
}

func TestApp_StartAddressInUse(t *testing.T) {
	// Arrange
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { busy.Close() })

	port := busy.Addr().(*net.TCPAddr).Port
	application, err := app.NewWithConfig(newConfig(t, `
jwt:
  secret: s
app:
  server:
    http:
      host: 127.0.0.1
      port: `+strconv.Itoa(port)+`
`))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:"+strconv.Itoa(port), application.Addr())

	// Act
	wait := application.Start()

	// Assert
	select {
	case <-wait:
	case <-time.After(5 * time.Second):
		t.Fatal("start did not report the listener failure")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.ErrorIs(t, application.Stop(ctx), syscall.EADDRINUSE)
}
