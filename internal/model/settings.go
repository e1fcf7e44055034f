package model

// Accent themes and assistant personalities accepted by the settings
// surface. Validation at the API boundary uses the same sets.
const (
	PersonalityBalanced = "balanced"
	PersonalityCreative = "creative"
	PersonalityPrecise  = "precise"
	PersonalityFast     = "fast"
)

// Settings is the flat configuration record read by the conversation
// pipeline to parameterize each request. All fields are optional on the
// wire; missing fields fall back to defaults on load.
type Settings struct {
	Model             string  `json:"model"`
	SupportModel      string  `json:"support_model"`
	SystemInstruction string  `json:"system_instruction"`
	Temperature       float64 `json:"temperature"`
	ThinkingBudget    int32   `json:"thinking_budget"`
	Theme             string  `json:"theme"`
	VoiceName         string  `json:"voice_name"`
	Personality       string  `json:"personality"`
	ShareLocation     bool    `json:"share_location"`
	EnableHaptics     bool    `json:"enable_haptics"`
	ZenMode           bool    `json:"zen_mode"`
}

// EffectiveTemperature resolves the sampling temperature the provider
// should use: an explicit personality overrides the numeric setting.
func (s *Settings) EffectiveTemperature() float64 {
	switch s.Personality {
	case PersonalityCreative:
		return 1.2
	case PersonalityPrecise:
		return 0.2
	default:
		return s.Temperature
	}
}

// EffectiveThinkingBudget resolves the thinking budget, which the precise
// personality raises when no explicit budget is configured.
func (s *Settings) EffectiveThinkingBudget() int32 {
	if s.ThinkingBudget > 0 {
		return s.ThinkingBudget
	}
	if s.Personality == PersonalityPrecise {
		return 16000
	}
	return 0
}
