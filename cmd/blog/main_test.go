package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-v0/internal/infrastructure/logger"
)

type fakeShutdowner struct {
	calls int
	err   error
}

func (f *fakeShutdowner) Shutdown(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestWaitAndShutdown_Signal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	server := &fakeShutdowner{}
	tracer := &fakeShutdowner{}

	err := waitAndShutdown(ctx, logger.DefaultLogger(), make(chan error), server, tracer)
	require.NoError(t, err)
	assert.Equal(t, 1, server.calls)
	assert.Equal(t, 1, tracer.calls)
}

func TestWaitAndShutdown_ServerErrorFlushesTracer(t *testing.T) {
	serverErr := make(chan error, 1)
	serverErr <- errors.New("listen tcp :8080: bind: address already in use")

	server := &fakeShutdowner{}
	tracer := &fakeShutdowner{}

	err := waitAndShutdown(context.Background(), logger.DefaultLogger(), serverErr, server, tracer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
	assert.Equal(t, 0, server.calls, "a failed server is not shut down again")
	assert.Equal(t, 1, tracer.calls, "pending spans must be flushed")
}

func TestWaitAndShutdown_JoinsErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	serverFailure := errors.New("server stuck")
	tracerFailure := errors.New("exporter unreachable")

	err := waitAndShutdown(ctx, logger.DefaultLogger(), make(chan error),
		&fakeShutdowner{err: serverFailure}, &fakeShutdowner{err: tracerFailure})
	require.Error(t, err)
	assert.ErrorIs(t, err, serverFailure)
	assert.ErrorIs(t, err, tracerFailure)
}
