package app

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/simpleauth/internal/pkg/goroutine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func newTerminate() (func(), <-chan struct{}) {
	done := make(chan struct{})
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, done
}

func waitClosed(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("terminate was not called")
	}
}

func TestListenTask(t *testing.T) {
	errBoom := errors.New("listener broke")

	tests := []struct {
		name          string
		serve         func() error
		wantWaitErr   error
		wantListenErr error
	}{
		{
			name:  "ServerClosed",
			serve: func() error { return http.ErrServerClosed },
		},
		{
			name:          "Failure",
			serve:         func() error { return errBoom },
			wantWaitErr:   errBoom,
			wantListenErr: errBoom,
		},
		{
			name:        "Panic",
			serve:       func() error { panic("listener panicked") },
			wantWaitErr: goroutine.ErrPanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			a := &App{goroutine: goroutine.NewManager(1), listenErr: atomic.NewError(nil)}
			terminate, done := newTerminate()

			// Act
			require.True(t, a.goroutine.Go(context.Background(), a.listenTask("127.0.0.1:0", tt.serve, terminate)))

			// Assert
			waitClosed(t, done)

			err := a.goroutine.Wait()
			if tt.wantWaitErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantWaitErr)
			}
			assert.Equal(t, tt.wantListenErr, a.listenErr.Load())
		})
	}
}
