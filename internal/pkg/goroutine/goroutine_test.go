package goroutine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CollectsErrors(t *testing.T) {
	g := NewManager(0)
	errBoom := errors.New("boom")

	require.True(t, g.Go(context.Background(), func(context.Context) error { return nil }))
	require.True(t, g.Go(context.Background(), func(context.Context) error { return errBoom }))

	assert.ErrorIs(t, g.Wait(), errBoom)
}

func TestManager_RecoversPanic(t *testing.T) {
	g := NewManager(1)

	require.True(t, g.Go(context.Background(), func(context.Context) error { panic("kaboom") }))

	assert.ErrorIs(t, g.Wait(), ErrPanic)
}

func TestManager_LimitReached(t *testing.T) {
	g := NewManager(1)
	release := make(chan struct{})

	require.True(t, g.Go(context.Background(), func(context.Context) error {
		<-release
		return nil
	}))
	assert.False(t, g.Go(context.Background(), func(context.Context) error { return nil }))

	close(release)
	assert.NoError(t, g.Wait())
}

func TestManager_ClosedAfterWait(t *testing.T) {
	g := NewManager(1)
	require.NoError(t, g.Wait())

	assert.False(t, g.Go(context.Background(), func(context.Context) error { return nil }))
}

func TestManager_CanceledContextSkipsTask(t *testing.T) {
	g := NewManager(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	require.True(t, g.Go(ctx, func(context.Context) error {
		ran = true
		return errors.New("unreachable")
	}))

	assert.NoError(t, g.Wait())
	assert.False(t, ran)
}

func TestManager_Nil(t *testing.T) {
	var g *Manager
	assert.False(t, g.Go(context.Background(), func(context.Context) error { return nil }))
	assert.NoError(t, g.Wait())
}
