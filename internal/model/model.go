package model

import (
	"encoding/json"
	"time"
)

// Message author roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// User is the singleton profile created at login.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar,omitempty"`
}

// Part is one fragment of a message's content: either text or an inline
// binary payload. Exactly one of the two should be set.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries a base64-encoded binary payload (image or audio).
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Metrics holds per-message generation measurements.
type Metrics struct {
	LatencyMs int64 `json:"latency_ms"`
}

// Message is one turn in a session. Messages are immutable once finalized,
// except for the in-flight fold of a streamed response into the text part
// and the user-toggleable starred flag.
type Message struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Parts       []Part    `json:"parts"`
	Timestamp   time.Time `json:"timestamp"`
	IsImage     bool      `json:"is_image,omitempty"`
	IsStarred   bool      `json:"is_starred,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Metrics     *Metrics  `json:"metrics,omitempty"`
}

// Text returns the message's first text part, the fold target for
// streamed responses.
func (m *Message) Text() string {
	for _, p := range m.Parts {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// Session stores metadata about one conversation thread.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullSession includes the session metadata and all its messages.
type FullSession struct {
	Session
	Messages []Message `json:"messages"`
}

// StarredMessage pairs a starred message with the session it belongs to.
type StarredMessage struct {
	SessionID    string  `json:"session_id"`
	SessionTitle string  `json:"session_title"`
	Message      Message `json:"message"`
}

// StreamEvent is a single chunk in a streaming submit response.
type StreamEvent struct {
	SessionID string          `json:"session_id,omitempty"`
	MessageID string          `json:"message_id,omitempty"`
	Content   string          `json:"content,omitempty"`
	Done      bool            `json:"done"`
	Message   json.RawMessage `json:"message,omitempty"`
	Error     string          `json:"error,omitempty"`
	RateLimit bool            `json:"rate_limited,omitempty"`
}

// Location is an optional coordinate pair attached to a chat request.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
