package app_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftboard/app"
	"driftboard/config"
	"driftboard/hal"
	"driftboard/logging"
	"driftboard/suggest"
)

func quietLogger() *logging.Logger {
	return logging.New(io.Discard, logging.LevelError)
}

func TestAppStepsAndPaints(t *testing.T) {
	h := hal.New(480, 360)
	a := app.New(h, config.Default(), quietLogger(), suggest.Unavailable{})
	defer a.Close()

	// Step long enough for the bundled typeface to arrive and the scene
	// pipeline to run at least once.
	for i := 0; i < 40; i++ {
		require.NoError(t, a.Step())
		time.Sleep(2 * time.Millisecond)
	}

	painted := false
	for _, b := range h.Display().Framebuffer().Buffer() {
		if b != 0 {
			painted = true
			break
		}
	}
	assert.True(t, painted, "a frame must paint the background and chrome")
}

func TestAppRunsHeadlessToCompletion(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := hal.RunHeadless(ctx, hal.HeadlessConfig{
		Width:  320,
		Height: 240,
		Hz:     500,
		Ticks:  30,
	}, func(h hal.HAL) hal.App {
		return app.New(h, config.Default(), quietLogger(), suggest.Unavailable{})
	})
	require.NoError(t, err)
}
