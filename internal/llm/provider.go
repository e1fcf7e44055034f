package llm

import (
	"context"
	"fmt"

	"orchestrator/backend/internal/model"
)

// StreamChunk is one incrementally delivered piece of a streamed chat
// response. Err is set on the final chunk when the stream failed.
type StreamChunk struct {
	Content string
	Done    bool
	Err     error
}

// ChatRequest carries everything a streaming chat call needs: the prior
// conversation, the new user input and the settings that parameterize the
// model.
type ChatRequest struct {
	History  []model.Message
	Text     string
	Settings *model.Settings
	Image    *model.InlineData
	Location *model.Location
}

// ImageResult is a generated image as a base64 payload.
type ImageResult struct {
	MimeType string
	Data     string
}

// AudioResult is synthesized speech as a base64 PCM payload
// (16-bit, mono, 24 kHz).
type AudioResult struct {
	MimeType string
	Data     string
}

// ProviderError is the structured failure the gateway reports for
// transport or quota problems.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.Status, e.Message)
}

// Provider defines the interface for the external AI provider. Title,
// suggestion and prompt-optimization calls degrade to fallbacks and never
// return an error.
type Provider interface {
	GenerateStream(ctx context.Context, req *ChatRequest, ch chan<- StreamChunk) error
	GenerateImage(ctx context.Context, prompt string) (*ImageResult, error)
	GenerateTitle(ctx context.Context, seed, modelName string) string
	GenerateSuggestions(ctx context.Context, contextText, modelName string) []string
	OptimizePrompt(ctx context.Context, draft, modelName string) string
	SynthesizeSpeech(ctx context.Context, text, voiceName string) (*AudioResult, error)

	HasCredential() bool
	SwapKey(ctx context.Context, apiKey string) error
}
