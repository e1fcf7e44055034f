package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	app_errors "orchestrator/backend/internal/errors"
	"orchestrator/backend/internal/model"
	"orchestrator/backend/internal/repository"
)

// Per-field storage keys. Storing settings as individual rows gives the
// overlay-on-defaults load semantics for free: a missing or unreadable row
// simply keeps its default.
const (
	keyModel             = "model"
	keySupportModel      = "support_model"
	keySystemInstruction = "system_instruction"
	keyTemperature       = "temperature"
	keyThinkingBudget    = "thinking_budget"
	keyTheme             = "theme"
	keyVoiceName         = "voice_name"
	keyPersonality       = "personality"
	keyShareLocation     = "share_location"
	keyEnableHaptics     = "enable_haptics"
	keyZenMode           = "zen_mode"
)

var validThemes = []string{"blue", "purple", "emerald", "rose", "amber"}

var validPersonalities = []string{
	model.PersonalityBalanced,
	model.PersonalityCreative,
	model.PersonalityPrecise,
	model.PersonalityFast,
}

type SettingsService struct {
	repo     repository.Repository
	defaults model.Settings
}

// NewSettingsService builds the service around the bootstrap defaults that
// stored values overlay onto.
func NewSettingsService(repo repository.Repository, defaultModel, supportModel, systemInstruction string) *SettingsService {
	return &SettingsService{
		repo: repo,
		defaults: model.Settings{
			Model:             defaultModel,
			SupportModel:      supportModel,
			SystemInstruction: systemInstruction,
			Temperature:       0.7,
			ThinkingBudget:    0,
			Theme:             "blue",
			VoiceName:         "Kore",
			Personality:       model.PersonalityBalanced,
			ShareLocation:     false,
			EnableHaptics:     true,
			ZenMode:           false,
		},
	}
}

// Get loads settings, overlaying stored rows onto the defaults. Unknown
// keys are ignored; unparsable values keep their default so a corrupt
// store never fails a read.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	stored, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load settings: %w", err)
	}

	settings := s.defaults
	overlayString(stored, keyModel, &settings.Model)
	overlayString(stored, keySupportModel, &settings.SupportModel)
	overlayString(stored, keySystemInstruction, &settings.SystemInstruction)
	overlayFloat(stored, keyTemperature, &settings.Temperature)
	overlayInt32(stored, keyThinkingBudget, &settings.ThinkingBudget)
	overlayString(stored, keyTheme, &settings.Theme)
	overlayString(stored, keyVoiceName, &settings.VoiceName)
	overlayString(stored, keyPersonality, &settings.Personality)
	overlayBool(stored, keyShareLocation, &settings.ShareLocation)
	overlayBool(stored, keyEnableHaptics, &settings.EnableHaptics)
	overlayBool(stored, keyZenMode, &settings.ZenMode)
	return &settings, nil
}

// Save validates and persists the full settings record.
func (s *SettingsService) Save(ctx context.Context, settings *model.Settings) error {
	if settings.Model == "" {
		return fmt.Errorf("%w: model must not be empty", app_errors.ErrValidation)
	}
	if settings.Temperature < 0 || settings.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be between 0 and 2", app_errors.ErrValidation)
	}
	if !slices.Contains(validThemes, settings.Theme) {
		return fmt.Errorf("%w: unknown theme %q", app_errors.ErrValidation, settings.Theme)
	}
	if !slices.Contains(validPersonalities, settings.Personality) {
		return fmt.Errorf("%w: unknown personality %q", app_errors.ErrValidation, settings.Personality)
	}

	values := map[string]string{
		keyModel:             settings.Model,
		keySupportModel:      settings.SupportModel,
		keySystemInstruction: settings.SystemInstruction,
		keyTemperature:       strconv.FormatFloat(settings.Temperature, 'f', -1, 64),
		keyThinkingBudget:    strconv.FormatInt(int64(settings.ThinkingBudget), 10),
		keyTheme:             settings.Theme,
		keyVoiceName:         settings.VoiceName,
		keyPersonality:       settings.Personality,
		keyShareLocation:     strconv.FormatBool(settings.ShareLocation),
		keyEnableHaptics:     strconv.FormatBool(settings.EnableHaptics),
		keyZenMode:           strconv.FormatBool(settings.ZenMode),
	}
	if err := s.repo.SaveSettings(ctx, values); err != nil {
		return fmt.Errorf("could not save settings: %w", err)
	}
	return nil
}

func overlayString(stored map[string]string, key string, target *string) {
	if v, ok := stored[key]; ok && v != "" {
		*target = v
	}
}

func overlayFloat(stored map[string]string, key string, target *float64) {
	v, ok := stored[key]
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("Ignoring unparsable stored setting", "key", key, "value", v)
		return
	}
	*target = parsed
}

func overlayInt32(stored map[string]string, key string, target *int32) {
	v, ok := stored[key]
	if !ok {
		return
	}
	parsed, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		slog.Warn("Ignoring unparsable stored setting", "key", key, "value", v)
		return
	}
	*target = int32(parsed)
}

func overlayBool(stored map[string]string, key string, target *bool) {
	v, ok := stored[key]
	if !ok {
		return
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring unparsable stored setting", "key", key, "value", v)
		return
	}
	*target = parsed
}
