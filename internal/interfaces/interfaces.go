package interfaces

import (
	"context"

	"orchestrator/backend/internal/llm"
	"orchestrator/backend/internal/model"
	"orchestrator/backend/internal/service"
)

// This file defines the interfaces for the core services. Depending on
// these instead of concrete implementations decouples the API layer from
// the service layer and keeps handlers mockable in tests.

// ConversationService defines the contract for session and submission
// logic.
type ConversationService interface {
	Submit(ctx context.Context, req *service.SubmitRequest, events chan<- model.StreamEvent)
	NewSession(ctx context.Context) (*model.Session, error)
	ListSessions(ctx context.Context) ([]*model.Session, error)
	GetFullSession(ctx context.Context, sessionID string) (*model.FullSession, error)
	UpdateSessionTitle(ctx context.Context, sessionID, newTitle string) error
	DeleteSession(ctx context.Context, sessionID string) error
	SetStarred(ctx context.Context, messageID string, starred bool) error
	StarredMessages(ctx context.Context) ([]model.StarredMessage, error)
	OptimizeDraft(ctx context.Context, draft string) string
	Speak(ctx context.Context, text, voiceName string) (*llm.AudioResult, error)
}

// SettingsService defines the contract for application settings.
type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
}

// ProfileService defines the contract for the singleton user profile and
// the input draft.
type ProfileService interface {
	Login(ctx context.Context, displayName, email, avatar string) (*model.User, error)
	Get(ctx context.Context) (*model.User, error)
	Logout(ctx context.Context) error
	GetDraft(ctx context.Context) (string, error)
	SaveDraft(ctx context.Context, text string) error
}
