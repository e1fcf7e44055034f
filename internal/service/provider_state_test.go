package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	app_errors "orchestrator/backend/internal/errors"
	"orchestrator/backend/internal/service"
)

func TestProviderState(t *testing.T) {
	t.Run("Starts OK with a credential", func(t *testing.T) {
		state := service.NewProviderState(true)
		assert.Equal(t, service.ConditionOK, state.Condition())
		assert.NoError(t, state.Guard())
	})

	t.Run("Starts blocked without a credential", func(t *testing.T) {
		state := service.NewProviderState(false)
		assert.Equal(t, service.ConditionMissingCredential, state.Condition())
		assert.ErrorIs(t, state.Guard(), app_errors.ErrNoCredential)
	})

	t.Run("Rate limiting blocks and clears", func(t *testing.T) {
		state := service.NewProviderState(true)
		state.SetRateLimited()
		assert.ErrorIs(t, state.Guard(), app_errors.ErrRateLimited)

		state.Clear()
		assert.NoError(t, state.Guard())
	})

	t.Run("Missing credential outranks rate limiting", func(t *testing.T) {
		state := service.NewProviderState(false)
		state.SetRateLimited()
		assert.Equal(t, service.ConditionMissingCredential, state.Condition())
		assert.ErrorIs(t, state.Guard(), app_errors.ErrNoCredential)
	})
}
