package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForStartStartedFirst(t *testing.T) {
	started := make(chan struct{})
	exited := make(chan string, 1)
	close(started)

	status, running := waitForStart(started, exited)
	assert.True(t, running)
	assert.Empty(t, status)
}

func TestWaitForStartExitedWithoutStart(t *testing.T) {
	// The game can exit before it ever reports as started; the wait must
	// unblock on the exit message instead of hanging.
	started := make(chan struct{})
	exited := make(chan string, 1)
	exited <- "Minecraft closed (exit code 1)."

	done := make(chan struct{})
	var status string
	var running bool
	go func() {
		status, running = waitForStart(started, exited)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waitForStart did not return on exit without start")
	}

	require.False(t, running)
	assert.Equal(t, "Minecraft closed (exit code 1).", status)
}
