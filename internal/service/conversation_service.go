package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	app_errors "orchestrator/backend/internal/errors"
	"orchestrator/backend/internal/llm"
	"orchestrator/backend/internal/model"
	"orchestrator/backend/internal/repository"
)

// Submission modes.
const (
	ModeChat  = "chat"
	ModeImage = "image"
)

const placeholderTitle = "New chat"

// ConversationService orchestrates a submission: resolve the target
// session, append the user message, call the provider, fold the streamed
// response into the in-flight assistant message and classify failures into
// either the blocking rate-limit condition or an inline error message.
type ConversationService struct {
	repo     repository.Repository
	llm      llm.Provider
	settings *SettingsService
	state    *ProviderState

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// SubmitRequest is one user intent: send text, optionally with an attached
// image, in chat or image-generation mode.
type SubmitRequest struct {
	SessionID string
	Text      string
	Mode      string
	Image     *model.InlineData
	Location  *model.Location
}

func NewConversationService(repo repository.Repository, provider llm.Provider, settings *SettingsService, state *ProviderState) *ConversationService {
	return &ConversationService{
		repo:     repo,
		llm:      provider,
		settings: settings,
		state:    state,
		inFlight: make(map[string]struct{}),
	}
}

// emit forwards ev unless ctx is already cancelled, reporting whether the
// event was delivered. Sends must never block past a client disconnect:
// the gateway handler stops draining then, and an unguarded send would
// wedge the submission with its in-flight slot held forever.
func emit(ctx context.Context, events chan<- model.StreamEvent, ev model.StreamEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// Submit processes one submission end to end, emitting progress on events.
// The channel is always closed before returning.
func (s *ConversationService) Submit(ctx context.Context, req *SubmitRequest, events chan<- model.StreamEvent) {
	defer close(events)

	if err := s.state.Guard(); err != nil {
		emit(ctx, events, model.StreamEvent{Error: err.Error(), RateLimit: errors.Is(err, app_errors.ErrRateLimited)})
		return
	}
	if req.Text == "" && req.Image == nil {
		emit(ctx, events, model.StreamEvent{Error: "message text or image is required"})
		return
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		slog.Error("Could not load application settings", "error", err)
		emit(ctx, events, model.StreamEvent{Error: "Could not load application settings"})
		return
	}

	session, err := s.resolveSession(ctx, req)
	if err != nil {
		slog.Error("Could not resolve session", "session_id", req.SessionID, "error", err)
		emit(ctx, events, model.StreamEvent{Error: "Could not resolve session"})
		return
	}

	// At most one in-flight submission per session. Other sessions may
	// submit concurrently.
	if !s.acquire(session.ID) {
		emit(ctx, events, model.StreamEvent{Error: "a submission is already in flight for this session"})
		return
	}
	defer s.release(session.ID)

	history, err := s.repo.GetMessages(ctx, session.ID)
	if err != nil {
		slog.Error("Could not load message history", "session_id", session.ID, "error", err)
		emit(ctx, events, model.StreamEvent{Error: "Could not load message history"})
		return
	}
	priorCount := len(history)

	// Pessimistic append: the user message is never rolled back, even if
	// the provider call fails.
	userMsg := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Parts:     buildUserParts(req),
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.AddMessage(ctx, session.ID, &userMsg); err != nil {
		slog.Error("Could not save user message", "session_id", session.ID, "error", err)
		emit(ctx, events, model.StreamEvent{Error: "Could not save message"})
		return
	}
	if !emit(ctx, events, model.StreamEvent{SessionID: session.ID, MessageID: userMsg.ID}) {
		return
	}

	started := time.Now()

	var ok bool
	if req.Mode == ModeImage {
		ok = s.submitImage(ctx, session, req, events)
	} else {
		ok = s.submitChat(ctx, session, settings, req, history, started, events)
	}

	if ok {
		s.maybeGenerateTitle(session, priorCount, req.Text, settings)
	}
}

// submitChat appends an empty assistant placeholder, streams the response
// and folds each fragment into it. Each fold replaces the single text part
// with the accumulator snapshot, so a duplicate application of the same
// snapshot cannot double-apply.
func (s *ConversationService) submitChat(
	ctx context.Context,
	session *model.Session,
	settings *model.Settings,
	req *SubmitRequest,
	history []model.Message,
	started time.Time,
	events chan<- model.StreamEvent,
) bool {
	placeholder := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleModel,
		Parts:     []model.Part{{Text: ""}},
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.AddMessage(ctx, session.ID, &placeholder); err != nil {
		slog.Error("Could not save assistant placeholder", "session_id", session.ID, "error", err)
		emit(ctx, events, model.StreamEvent{Error: "Could not save message"})
		return false
	}
	if !emit(ctx, events, model.StreamEvent{SessionID: session.ID, MessageID: placeholder.ID}) {
		return false
	}

	chatReq := &llm.ChatRequest{
		History:  history,
		Text:     req.Text,
		Settings: settings,
		Image:    req.Image,
	}
	if settings.ShareLocation {
		chatReq.Location = req.Location
	}

	stream := make(chan llm.StreamChunk)
	go func() {
		if err := s.llm.GenerateStream(ctx, chatReq, stream); err != nil {
			slog.Warn("Chat stream ended with error", "session_id", session.ID, "error", err)
		}
	}()

	var acc strings.Builder
	completed := false
	for chunk := range stream {
		if chunk.Err != nil {
			s.failChat(ctx, session.ID, placeholder.ID, acc.String(), chunk.Err, events)
			return false
		}
		if chunk.Done {
			completed = true
			break
		}
		if chunk.Content == "" {
			continue
		}
		acc.WriteString(chunk.Content)
		if err := s.repo.UpdateMessageParts(ctx, placeholder.ID, []model.Part{{Text: acc.String()}}); err != nil {
			slog.Error("Could not fold fragment into message", "message_id", placeholder.ID, "error", err)
		}
		if !emit(ctx, events, model.StreamEvent{Content: chunk.Content}) {
			drainStream(stream)
			return false
		}
	}
	if !completed {
		// The stream closed without a terminal chunk, which only happens
		// when the submission context was cancelled mid-response. The
		// folded partial stays; the exchange did not succeed.
		slog.Info("Submission cancelled mid-stream", "session_id", session.ID, "message_id", placeholder.ID)
		return false
	}

	metrics := &model.Metrics{LatencyMs: time.Since(started).Milliseconds()}
	suggestions := s.llm.GenerateSuggestions(ctx, acc.String(), settings.SupportModel)
	if err := s.repo.UpdateMessageMeta(ctx, placeholder.ID, suggestions, metrics); err != nil {
		slog.Error("Could not attach message metadata", "message_id", placeholder.ID, "error", err)
	}

	placeholder.Parts = []model.Part{{Text: acc.String()}}
	placeholder.Suggestions = suggestions
	placeholder.Metrics = metrics
	raw, err := json.Marshal(&placeholder)
	if err != nil {
		slog.Error("Could not marshal final message", "message_id", placeholder.ID, "error", err)
	}
	emit(ctx, events, model.StreamEvent{Done: true, MessageID: placeholder.ID, Message: raw})
	return true
}

// drainStream consumes a stream abandoned mid-fold so the provider
// goroutine can observe its cancelled context and close the channel.
func drainStream(stream <-chan llm.StreamChunk) {
	for range stream {
	}
}

// failChat routes a stream failure. A rate-limit signature raises the
// process-wide blocking condition and leaves no error message in the
// conversation; anything else becomes exactly one synthetic assistant
// message.
func (s *ConversationService) failChat(ctx context.Context, sessionID, placeholderID, partial string, err error, events chan<- model.StreamEvent) {
	if llm.IsRateLimited(err) {
		slog.Warn("Provider rate limited, blocking submissions", "session_id", sessionID, "error", err)
		s.state.SetRateLimited()
		if partial == "" {
			if delErr := s.repo.DeleteMessage(ctx, placeholderID); delErr != nil {
				slog.Warn("Could not retract assistant placeholder", "message_id", placeholderID, "error", delErr)
			}
		}
		emit(ctx, events, model.StreamEvent{Error: app_errors.ErrRateLimited.Error(), RateLimit: true})
		return
	}

	errText := fmt.Sprintf("Connection error: %s", providerMessage(err))
	if partial == "" {
		// Reuse the empty placeholder as the synthetic error message.
		if updErr := s.repo.UpdateMessageParts(ctx, placeholderID, []model.Part{{Text: errText}}); updErr != nil {
			slog.Error("Could not write synthetic error message", "message_id", placeholderID, "error", updErr)
		}
		emit(ctx, events, model.StreamEvent{Done: true, MessageID: placeholderID, Error: errText})
		return
	}

	// The partial response stays; the error is appended as its own message.
	errMsg := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleModel,
		Parts:     []model.Part{{Text: errText}},
		Timestamp: time.Now().UTC(),
	}
	if addErr := s.repo.AddMessage(ctx, sessionID, &errMsg); addErr != nil {
		slog.Error("Could not append synthetic error message", "session_id", sessionID, "error", addErr)
	}
	emit(ctx, events, model.StreamEvent{Done: true, MessageID: errMsg.ID, Error: errText})
}

// submitImage generates an image and appends a single assistant message
// with a caption part and the inline payload.
func (s *ConversationService) submitImage(ctx context.Context, session *model.Session, req *SubmitRequest, events chan<- model.StreamEvent) bool {
	result, err := s.llm.GenerateImage(ctx, req.Text)
	if err != nil {
		if llm.IsRateLimited(err) {
			slog.Warn("Provider rate limited, blocking submissions", "session_id", session.ID, "error", err)
			s.state.SetRateLimited()
			emit(ctx, events, model.StreamEvent{Error: app_errors.ErrRateLimited.Error(), RateLimit: true})
			return false
		}
		errText := fmt.Sprintf("Connection error: %s", providerMessage(err))
		errMsg := model.Message{
			ID:        uuid.NewString(),
			Role:      model.RoleModel,
			Parts:     []model.Part{{Text: errText}},
			Timestamp: time.Now().UTC(),
		}
		if addErr := s.repo.AddMessage(ctx, session.ID, &errMsg); addErr != nil {
			slog.Error("Could not append synthetic error message", "session_id", session.ID, "error", addErr)
		}
		emit(ctx, events, model.StreamEvent{Done: true, MessageID: errMsg.ID, Error: errText})
		return false
	}

	imgMsg := model.Message{
		ID:   uuid.NewString(),
		Role: model.RoleModel,
		Parts: []model.Part{
			{Text: fmt.Sprintf("Visualization for: %q", req.Text)},
			{InlineData: &model.InlineData{MimeType: result.MimeType, Data: result.Data}},
		},
		Timestamp: time.Now().UTC(),
		IsImage:   true,
	}
	if err := s.repo.AddMessage(ctx, session.ID, &imgMsg); err != nil {
		slog.Error("Could not save image message", "session_id", session.ID, "error", err)
		emit(ctx, events, model.StreamEvent{Error: "Could not save message"})
		return false
	}
	raw, err := json.Marshal(&imgMsg)
	if err != nil {
		slog.Error("Could not marshal image message", "message_id", imgMsg.ID, "error", err)
	}
	emit(ctx, events, model.StreamEvent{Done: true, MessageID: imgMsg.ID, Message: raw})
	return true
}

// maybeGenerateTitle requests a generated title when the session is still
// young (placeholder title or at most two prior messages). Runs detached so
// a slow title call never blocks the response.
func (s *ConversationService) maybeGenerateTitle(session *model.Session, priorCount int, seed string, settings *model.Settings) {
	if session.Title != placeholderTitle && priorCount > 2 {
		return
	}
	go func() {
		ctx := context.Background()
		title := s.llm.GenerateTitle(ctx, seed, settings.Model)
		if title == "" {
			return
		}
		if err := s.repo.UpdateSessionTitle(ctx, session.ID, title); err != nil {
			slog.Warn("Could not update generated title", "session_id", session.ID, "error", err)
		}
	}()
}

// resolveSession loads the target session, or synthesizes a new one when
// no id was given.
func (s *ConversationService) resolveSession(ctx context.Context, req *SubmitRequest) (*model.Session, error) {
	if req.SessionID != "" {
		session, err := s.repo.GetSession(ctx, req.SessionID)
		if err != nil {
			return nil, translateRepoErr(err)
		}
		return session, nil
	}

	title := truncate(req.Text, 30)
	if title == "" {
		title = placeholderTitle
	}
	now := time.Now().UTC()
	session := &model.Session{ID: uuid.NewString(), Title: title, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// NewSession explicitly creates an empty session with the placeholder
// title.
func (s *ConversationService) NewSession(ctx context.Context) (*model.Session, error) {
	now := time.Now().UTC()
	session := &model.Session{ID: uuid.NewString(), Title: placeholderTitle, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions returns all sessions, most recently created first.
func (s *ConversationService) ListSessions(ctx context.Context) ([]*model.Session, error) {
	return s.repo.GetSessions(ctx)
}

// GetFullSession retrieves a session's metadata and all its messages.
func (s *ConversationService) GetFullSession(ctx context.Context, sessionID string) (*model.FullSession, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	messages, err := s.repo.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get messages: %w", err)
	}
	return &model.FullSession{Session: *session, Messages: messages}, nil
}

// UpdateSessionTitle handles a manual title change.
func (s *ConversationService) UpdateSessionTitle(ctx context.Context, sessionID, newTitle string) error {
	if newTitle == "" {
		return fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	return translateRepoErr(s.repo.UpdateSessionTitle(ctx, sessionID, newTitle))
}

// DeleteSession removes a session and all its messages.
func (s *ConversationService) DeleteSession(ctx context.Context, sessionID string) error {
	return translateRepoErr(s.repo.DeleteSession(ctx, sessionID))
}

// SetStarred sets a message's starred flag. Idempotent: starring an
// already-starred message is a no-op.
func (s *ConversationService) SetStarred(ctx context.Context, messageID string, starred bool) error {
	return translateRepoErr(s.repo.SetMessageStarred(ctx, messageID, starred))
}

// StarredMessages returns every starred message across all sessions.
func (s *ConversationService) StarredMessages(ctx context.Context) ([]model.StarredMessage, error) {
	return s.repo.GetStarredMessages(ctx)
}

// OptimizeDraft rewrites a prompt draft with the configured support model;
// on any provider trouble the draft comes back unchanged.
func (s *ConversationService) OptimizeDraft(ctx context.Context, draft string) string {
	supportModel := ""
	if settings, err := s.settings.Get(ctx); err == nil {
		supportModel = settings.SupportModel
	} else {
		slog.Warn("Could not load settings for draft optimization", "error", err)
	}
	return s.llm.OptimizePrompt(ctx, draft, supportModel)
}

// Speak synthesizes speech for the given text with the configured voice.
func (s *ConversationService) Speak(ctx context.Context, text, voiceName string) (*llm.AudioResult, error) {
	if err := s.state.Guard(); err != nil {
		return nil, err
	}
	if voiceName == "" {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		voiceName = settings.VoiceName
	}
	audio, err := s.llm.SynthesizeSpeech(ctx, text, voiceName)
	if err != nil {
		if llm.IsRateLimited(err) {
			s.state.SetRateLimited()
			return nil, app_errors.ErrRateLimited
		}
		return nil, err
	}
	return audio, nil
}

func (s *ConversationService) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *ConversationService) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

func buildUserParts(req *SubmitRequest) []model.Part {
	var parts []model.Part
	if req.Text != "" {
		parts = append(parts, model.Part{Text: req.Text})
	}
	if req.Image != nil {
		parts = append(parts, model.Part{InlineData: req.Image})
	}
	return parts
}

// providerMessage extracts a human-readable message from a gateway error.
func providerMessage(err error) string {
	var provErr *llm.ProviderError
	if errors.As(err, &provErr) && provErr.Message != "" {
		return provErr.Message
	}
	return err.Error()
}

func translateRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return app_errors.ErrNotFound
	}
	return err
}

// truncate shortens a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
