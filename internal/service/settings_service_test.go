package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "orchestrator/backend/internal/errors"
	"orchestrator/backend/internal/model"
	mock_repo "orchestrator/backend/internal/repository/mocks"
	"orchestrator/backend/internal/service"
)

func setupSettingsService(t *testing.T) (*service.SettingsService, *mock_repo.MockRepository) {
	repo := mock_repo.NewMockRepository(t)
	return service.NewSettingsService(repo, "test-model", "support-model", "system"), repo
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Empty store returns defaults", func(t *testing.T) {
		settingsService, repo := setupSettingsService(t)
		repo.On("GetSettings", ctx).Return(map[string]string{}, nil).Once()

		settings, err := settingsService.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "test-model", settings.Model)
		assert.Equal(t, "support-model", settings.SupportModel)
		assert.InDelta(t, 0.7, settings.Temperature, 1e-9)
		assert.Equal(t, "blue", settings.Theme)
		assert.Equal(t, "Kore", settings.VoiceName)
		assert.Equal(t, model.PersonalityBalanced, settings.Personality)
		assert.True(t, settings.EnableHaptics)
		assert.False(t, settings.ZenMode)
	})

	t.Run("Success - Stored rows overlay the defaults", func(t *testing.T) {
		settingsService, repo := setupSettingsService(t)
		repo.On("GetSettings", ctx).Return(map[string]string{
			"model":       "other-model",
			"temperature": "1.4",
			"theme":       "rose",
			"zen_mode":    "true",
		}, nil).Once()

		settings, err := settingsService.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "other-model", settings.Model)
		assert.InDelta(t, 1.4, settings.Temperature, 1e-9)
		assert.Equal(t, "rose", settings.Theme)
		assert.True(t, settings.ZenMode)
		// Untouched fields keep their defaults.
		assert.Equal(t, "support-model", settings.SupportModel)
		assert.Equal(t, "Kore", settings.VoiceName)
	})

	t.Run("Success - Unparsable rows keep their default", func(t *testing.T) {
		settingsService, repo := setupSettingsService(t)
		repo.On("GetSettings", ctx).Return(map[string]string{
			"temperature":     "hot",
			"thinking_budget": "lots",
			"enable_haptics":  "yes please",
			"unknown_key":     "ignored",
		}, nil).Once()

		settings, err := settingsService.Get(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 0.7, settings.Temperature, 1e-9)
		assert.Equal(t, int32(0), settings.ThinkingBudget)
		assert.True(t, settings.EnableHaptics)
	})

	t.Run("Failure - Repository error", func(t *testing.T) {
		settingsService, repo := setupSettingsService(t)
		repo.On("GetSettings", ctx).Return(nil, errors.New("db error")).Once()

		_, err := settingsService.Get(ctx)
		assert.Error(t, err)
	})
}

func TestSettingsService_Save(t *testing.T) {
	ctx := context.Background()

	valid := func() *model.Settings {
		return &model.Settings{
			Model:       "test-model",
			Temperature: 0.9,
			Theme:       "emerald",
			Personality: model.PersonalityCreative,
		}
	}

	t.Run("Success", func(t *testing.T) {
		settingsService, repo := setupSettingsService(t)

		var saved map[string]string
		repo.On("SaveSettings", ctx, mock.Anything).
			Return(nil).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(map[string]string)
			}).Once()

		require.NoError(t, settingsService.Save(ctx, valid()))
		assert.Equal(t, "test-model", saved["model"])
		assert.Equal(t, "0.9", saved["temperature"])
		assert.Equal(t, "emerald", saved["theme"])
		assert.Equal(t, "creative", saved["personality"])
		assert.Equal(t, "false", saved["zen_mode"])
	})

	t.Run("Failure - Empty model", func(t *testing.T) {
		settingsService, _ := setupSettingsService(t)
		settings := valid()
		settings.Model = ""

		err := settingsService.Save(ctx, settings)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - Temperature out of range", func(t *testing.T) {
		settingsService, _ := setupSettingsService(t)
		settings := valid()
		settings.Temperature = 2.5

		err := settingsService.Save(ctx, settings)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - Unknown theme", func(t *testing.T) {
		settingsService, _ := setupSettingsService(t)
		settings := valid()
		settings.Theme = "chartreuse"

		err := settingsService.Save(ctx, settings)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - Unknown personality", func(t *testing.T) {
		settingsService, _ := setupSettingsService(t)
		settings := valid()
		settings.Personality = "chaotic"

		err := settingsService.Save(ctx, settings)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - Repository error", func(t *testing.T) {
		settingsService, repo := setupSettingsService(t)
		repo.On("SaveSettings", ctx, mock.Anything).Return(errors.New("db error")).Once()

		err := settingsService.Save(ctx, valid())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestSettings_RoundTrip(t *testing.T) {
	ctx := context.Background()
	settingsService, repo := setupSettingsService(t)

	store := map[string]string{}
	repo.On("SaveSettings", ctx, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			for k, v := range args.Get(1).(map[string]string) {
				store[k] = v
			}
		}).Once()
	repo.On("GetSettings", ctx).Return(store, nil).Once()

	want := &model.Settings{
		Model:             "test-model",
		SupportModel:      "support-model",
		SystemInstruction: "be terse",
		Temperature:       1.2,
		ThinkingBudget:    8000,
		Theme:             "amber",
		VoiceName:         "Puck",
		Personality:       model.PersonalityPrecise,
		ShareLocation:     true,
		EnableHaptics:     false,
		ZenMode:           true,
	}
	require.NoError(t, settingsService.Save(ctx, want))

	got, err := settingsService.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
