package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"orchestrator/backend/internal/model"
)

const (
	imageModel   = "gemini-2.5-flash-image"
	speechModel  = "gemini-2.5-flash-preview-tts"
	supportModel = "gemini-3-flash-preview"

	fallbackTitle = "New chat"
)

// fallbackSuggestions is the degraded follow-up list used when the
// suggestion call fails or returns garbage.
var fallbackSuggestions = []string{"Tell me more", "Explain that", "What's next?"}

type geminiProvider struct {
	mu          sync.RWMutex
	client      *genai.Client
	idleTimeout time.Duration
}

// NewGeminiProvider builds the gateway. An empty apiKey yields a provider
// without a client; calls fail until SwapKey installs one.
func NewGeminiProvider(ctx context.Context, apiKey string, idleTimeout time.Duration) (Provider, error) {
	p := &geminiProvider{idleTimeout: idleTimeout}
	if apiKey == "" {
		return p, nil
	}
	if err := p.SwapKey(ctx, apiKey); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *geminiProvider) HasCredential() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client != nil
}

// SwapKey replaces the underlying client with one built from the given key.
func (p *geminiProvider) SwapKey(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return &ProviderError{Status: http.StatusUnauthorized, Message: "empty API key"}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return wrapError(err)
	}
	p.mu.Lock()
	p.client = client
	p.mu.Unlock()
	return nil
}

func (p *geminiProvider) getClient() (*genai.Client, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.client == nil {
		return nil, &ProviderError{Status: http.StatusUnauthorized, Message: "no API key configured"}
	}
	return p.client, nil
}

// GenerateStream opens a streaming chat completion and forwards text
// fragments to ch. The channel is closed when the stream ends. A stream
// silent for longer than the idle timeout is failed as a provider error.
func (p *geminiProvider) GenerateStream(ctx context.Context, req *ChatRequest, ch chan<- StreamChunk) error {
	defer close(ch)

	client, err := p.getClient()
	if err != nil {
		ch <- StreamChunk{Err: err}
		return err
	}

	contents := buildContents(req)
	cfg := chatConfig(req.Settings)

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// All producer sends go through sendChunk so that cancelling streamCtx
	// always releases the goroutine, even with no receiver left.
	inner := make(chan StreamChunk)
	go func() {
		defer close(inner)
		for resp, err := range client.Models.GenerateContentStream(streamCtx, req.Settings.Model, contents, cfg) {
			if err != nil {
				sendChunk(streamCtx, inner, StreamChunk{Err: wrapError(err)})
				return
			}
			if !sendChunk(streamCtx, inner, StreamChunk{Content: resp.Text()}) {
				return
			}
		}
		sendChunk(streamCtx, inner, StreamChunk{Done: true})
	}()

	timer := time.NewTimer(p.idleTimeout)
	defer timer.Stop()

	for {
		select {
		case chunk, ok := <-inner:
			if !ok {
				return nil
			}
			if chunk.Err != nil {
				sendChunk(ctx, ch, chunk)
				return chunk.Err
			}
			if !sendChunk(ctx, ch, chunk) {
				return ctx.Err()
			}
			if chunk.Done {
				return nil
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(p.idleTimeout)
		case <-timer.C:
			cancel()
			err := &ProviderError{Status: http.StatusGatewayTimeout, Message: "stream idle timeout"}
			sendChunk(ctx, ch, StreamChunk{Err: err})
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// sendChunk delivers c unless ctx is already cancelled, reporting whether
// the chunk was accepted.
func sendChunk(ctx context.Context, ch chan<- StreamChunk, c StreamChunk) bool {
	select {
	case ch <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

// GenerateImage asks for an inline image, first with a decorated
// photorealistic prompt and, when no image data comes back, once more with
// the raw prompt.
func (p *geminiProvider) GenerateImage(ctx context.Context, prompt string) (*ImageResult, error) {
	client, err := p.getClient()
	if err != nil {
		return nil, err
	}

	attempts := []string{
		fmt.Sprintf("Generate a photorealistic, high-resolution image of: %s", prompt),
		prompt,
	}

	var lastErr error
	for _, attempt := range attempts {
		contents := []*genai.Content{genai.NewContentFromText(attempt, genai.RoleUser)}
		resp, err := client.Models.GenerateContent(ctx, imageModel, contents, nil)
		if err != nil {
			lastErr = wrapError(err)
			continue
		}
		if result := extractInlineData(resp, "image/png"); result != nil {
			return &ImageResult{MimeType: result.MimeType, Data: result.Data}, nil
		}
		lastErr = &ProviderError{Status: http.StatusBadGateway, Message: "model returned no image data"}
	}
	return nil, lastErr
}

// GenerateTitle produces a short session title. Never fails: any problem
// degrades to the fixed fallback.
func (p *geminiProvider) GenerateTitle(ctx context.Context, seed, modelName string) string {
	client, err := p.getClient()
	if err != nil {
		return fallbackTitle
	}

	budget := int32(0)
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: 50,
		ThinkingConfig:  &genai.ThinkingConfig{ThinkingBudget: &budget},
	}
	prompt := fmt.Sprintf("Short title for: %q. Max 3 words.", truncate(seed, 150))
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		slog.Debug("Title generation failed, using fallback", "error", err)
		return fallbackTitle
	}
	title := strings.Trim(strings.TrimSpace(resp.Text()), `"'`)
	if title == "" {
		return fallbackTitle
	}
	return title
}

// GenerateSuggestions asks for up to three short follow-up strings as JSON.
// Never fails: any problem degrades to the fixed fallback list.
func (p *geminiProvider) GenerateSuggestions(ctx context.Context, contextText, modelName string) []string {
	client, err := p.getClient()
	if err != nil {
		return fallbackSuggestions
	}
	if modelName == "" {
		modelName = supportModel
	}

	prompt := fmt.Sprintf("Context: %q. Suggest 3 very short follow-up buttons for the user. JSON array of strings only.", truncate(contextText, 500))
	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		slog.Debug("Suggestion generation failed, using fallback", "error", err)
		return fallbackSuggestions
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(resp.Text()), &suggestions); err != nil || len(suggestions) == 0 {
		return fallbackSuggestions
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

// OptimizePrompt rewrites a draft into a higher-performance prompt. Never
// fails: any problem returns the draft unchanged.
func (p *geminiProvider) OptimizePrompt(ctx context.Context, draft, modelName string) string {
	if strings.TrimSpace(draft) == "" {
		return draft
	}
	client, err := p.getClient()
	if err != nil {
		return draft
	}
	if modelName == "" {
		modelName = supportModel
	}

	budget := int32(0)
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: 300,
		ThinkingConfig:  &genai.ThinkingConfig{ThinkingBudget: &budget},
	}
	prompt := fmt.Sprintf("Rewrite this prompt to be high-performance for an LLM: %q", draft)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		return draft
	}
	if rewritten := strings.TrimSpace(resp.Text()); rewritten != "" {
		return rewritten
	}
	return draft
}

// SynthesizeSpeech renders text to PCM audio with the given prebuilt voice.
func (p *geminiProvider) SynthesizeSpeech(ctx context.Context, text, voiceName string) (*AudioResult, error) {
	client, err := p.getClient()
	if err != nil {
		return nil, err
	}
	if voiceName == "" {
		voiceName = "Kore"
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voiceName},
			},
		},
	}
	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, speechModel, contents, cfg)
	if err != nil {
		return nil, wrapError(err)
	}
	result := extractInlineData(resp, "audio/pcm;rate=24000")
	if result == nil {
		return nil, &ProviderError{Status: http.StatusBadGateway, Message: "model returned no audio data"}
	}
	return &AudioResult{MimeType: result.MimeType, Data: result.Data}, nil
}

// buildContents maps the stored conversation plus the new user turn into
// provider content. Inline payloads are decoded from their base64 storage
// form; an undecodable payload is skipped rather than failing the turn.
func buildContents(req *ChatRequest) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range req.History {
		var role genai.Role = genai.RoleUser
		if msg.Role == model.RoleModel {
			role = genai.RoleModel
		}
		parts := toGenaiParts(msg.Parts)
		if len(parts) == 0 {
			continue
		}
		contents = append(contents, genai.NewContentFromParts(parts, role))
	}

	userParts := []*genai.Part{{Text: req.Text}}
	if req.Image != nil {
		if blob := toBlob(req.Image); blob != nil {
			userParts = append(userParts, &genai.Part{InlineData: blob})
		}
	}
	if req.Location != nil {
		userParts = append(userParts, &genai.Part{
			Text: fmt.Sprintf("(User location: %.4f, %.4f)", req.Location.Latitude, req.Location.Longitude),
		})
	}
	contents = append(contents, genai.NewContentFromParts(userParts, genai.RoleUser))
	return contents
}

func toGenaiParts(parts []model.Part) []*genai.Part {
	var out []*genai.Part
	for _, p := range parts {
		switch {
		case p.Text != "":
			out = append(out, &genai.Part{Text: p.Text})
		case p.InlineData != nil:
			if blob := toBlob(p.InlineData); blob != nil {
				out = append(out, &genai.Part{InlineData: blob})
			}
		}
	}
	return out
}

func toBlob(data *model.InlineData) *genai.Blob {
	raw, err := base64.StdEncoding.DecodeString(data.Data)
	if err != nil {
		slog.Warn("Skipping undecodable inline payload", "mime_type", data.MimeType, "error", err)
		return nil
	}
	return &genai.Blob{MIMEType: data.MimeType, Data: raw}
}

func chatConfig(settings *model.Settings) *genai.GenerateContentConfig {
	temp := float32(settings.EffectiveTemperature())
	budget := settings.EffectiveThinkingBudget()
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(settings.SystemInstruction, genai.RoleUser),
		Temperature:       &temp,
		ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: &budget},
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
}

// extractInlineData returns the first inline payload of the response,
// base64-encoded, with defaultMime when the model omitted the mime type.
func extractInlineData(resp *genai.GenerateContentResponse, defaultMime string) *model.InlineData {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = defaultMime
				}
				return &model.InlineData{
					MimeType: mime,
					Data:     base64.StdEncoding.EncodeToString(part.InlineData.Data),
				}
			}
		}
	}
	return nil
}

// truncate shortens a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
