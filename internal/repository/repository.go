package repository

import (
	"context"

	"orchestrator/backend/internal/model"
)

// Repository defines the interface for data storage operations.
// This interface makes it easy to switch database implementations.
type Repository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	GetSessions(ctx context.Context) ([]*model.Session, error)
	UpdateSessionTitle(ctx context.Context, sessionID, newTitle string) error
	DeleteSession(ctx context.Context, sessionID string) error

	AddMessage(ctx context.Context, sessionID string, message *model.Message) error
	GetMessages(ctx context.Context, sessionID string) ([]model.Message, error)
	UpdateMessageParts(ctx context.Context, messageID string, parts []model.Part) error
	UpdateMessageMeta(ctx context.Context, messageID string, suggestions []string, metrics *model.Metrics) error
	DeleteMessage(ctx context.Context, messageID string) error
	SetMessageStarred(ctx context.Context, messageID string, starred bool) error
	GetStarredMessages(ctx context.Context) ([]model.StarredMessage, error)

	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context) (*model.User, error)
	DeleteUser(ctx context.Context) error

	GetSettings(ctx context.Context) (map[string]string, error)
	SaveSettings(ctx context.Context, values map[string]string) error

	GetDraft(ctx context.Context) (string, error)
	SaveDraft(ctx context.Context, text string) error
}
