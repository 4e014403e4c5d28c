package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsCleanupOnlyOnce(t *testing.T) {
	calls := 0
	appCtx := &AppContext{
		ServiceName: "test",
		shutdownFuncs: []func(context.Context) error{
			func(ctx context.Context) error {
				calls++
				return nil
			},
		},
	}

	ctx := context.Background()
	assert.NoError(t, appCtx.Shutdown(ctx))
	assert.NoError(t, appCtx.Shutdown(ctx))
	assert.Equal(t, 1, calls)
}
