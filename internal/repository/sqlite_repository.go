package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"orchestrator/backend/internal/model"
)

const draftKey = "draft"

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(ctx context.Context, session *model.Session) error {
	query := "INSERT INTO sessions (id, title, created_at, updated_at) VALUES (?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, session.ID, session.Title, session.CreatedAt, session.UpdatedAt)
	return err
}

func (r *sqliteRepository) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := "SELECT id, title, created_at, updated_at FROM sessions WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, sessionID)
	var session model.Session
	err := row.Scan(&session.ID, &session.Title, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sqliteRepository) GetSessions(ctx context.Context) ([]*model.Session, error) {
	query := "SELECT id, title, created_at, updated_at FROM sessions ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*model.Session
	for rows.Next() {
		var session model.Session
		if err := rows.Scan(&session.ID, &session.Title, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}
	return sessions, rows.Err()
}

func (r *sqliteRepository) UpdateSessionTitle(ctx context.Context, sessionID, newTitle string) error {
	query := "UPDATE sessions SET title = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, newTitle, time.Now().UTC(), sessionID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepository) DeleteSession(ctx context.Context, sessionID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sessionID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AddMessage inserts a message and bumps the session's updated_at in one
// transaction, so readers never observe one without the other.
func (r *sqliteRepository) AddMessage(ctx context.Context, sessionID string, message *model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	parts, err := json.Marshal(message.Parts)
	if err != nil {
		return fmt.Errorf("could not marshal message parts: %w", err)
	}

	var suggestions sql.NullString
	if len(message.Suggestions) > 0 {
		b, err := json.Marshal(message.Suggestions)
		if err != nil {
			return fmt.Errorf("could not marshal suggestions: %w", err)
		}
		suggestions = sql.NullString{String: string(b), Valid: true}
	}

	var latency sql.NullInt64
	if message.Metrics != nil {
		latency = sql.NullInt64{Int64: message.Metrics.LatencyMs, Valid: true}
	}

	insertQuery := `
		INSERT INTO messages (id, session_id, role, parts, timestamp, is_image, is_starred, suggestions, latency_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		message.ID,
		sessionID,
		message.Role,
		string(parts),
		message.Timestamp,
		message.IsImage,
		message.IsStarred,
		suggestions,
		latency,
	)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}

	_, err = tx.ExecContext(ctx, "UPDATE sessions SET updated_at = ? WHERE id = ?", time.Now().UTC(), sessionID)
	if err != nil {
		return fmt.Errorf("could not update session timestamp: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetMessages(ctx context.Context, sessionID string) ([]model.Message, error) {
	query := `
		SELECT id, role, parts, timestamp, is_image, is_starred, suggestions, latency_ms
		FROM messages
		WHERE session_id = ?
		ORDER BY timestamp ASC
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// UpdateMessageParts replaces the entire part list of a message. The
// streaming fold relies on this being a replacement, never an append.
func (r *sqliteRepository) UpdateMessageParts(ctx context.Context, messageID string, parts []model.Part) error {
	b, err := json.Marshal(parts)
	if err != nil {
		return fmt.Errorf("could not marshal message parts: %w", err)
	}
	res, err := r.db.ExecContext(ctx, "UPDATE messages SET parts = ? WHERE id = ?", string(b), messageID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepository) UpdateMessageMeta(ctx context.Context, messageID string, suggestions []string, metrics *model.Metrics) error {
	var sugg sql.NullString
	if len(suggestions) > 0 {
		b, err := json.Marshal(suggestions)
		if err != nil {
			return fmt.Errorf("could not marshal suggestions: %w", err)
		}
		sugg = sql.NullString{String: string(b), Valid: true}
	}
	var latency sql.NullInt64
	if metrics != nil {
		latency = sql.NullInt64{Int64: metrics.LatencyMs, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, "UPDATE messages SET suggestions = ?, latency_ms = ? WHERE id = ?", sugg, latency, messageID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepository) DeleteMessage(ctx context.Context, messageID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM messages WHERE id = ?", messageID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepository) SetMessageStarred(ctx context.Context, messageID string, starred bool) error {
	res, err := r.db.ExecContext(ctx, "UPDATE messages SET is_starred = ? WHERE id = ?", starred, messageID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepository) GetStarredMessages(ctx context.Context) ([]model.StarredMessage, error) {
	query := `
		SELECT m.id, m.role, m.parts, m.timestamp, m.is_image, m.is_starred, m.suggestions, m.latency_ms,
		       s.id, s.title
		FROM messages m
		JOIN sessions s ON s.id = m.session_id
		WHERE m.is_starred = TRUE
		ORDER BY m.timestamp DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var starred []model.StarredMessage
	for rows.Next() {
		var (
			msg         model.Message
			parts       string
			suggestions sql.NullString
			latency     sql.NullInt64
			sessionID   string
			title       string
		)
		if err := rows.Scan(&msg.ID, &msg.Role, &parts, &msg.Timestamp, &msg.IsImage, &msg.IsStarred, &suggestions, &latency, &sessionID, &title); err != nil {
			return nil, err
		}
		if err := decodeMessageColumns(&msg, parts, suggestions, latency); err != nil {
			return nil, err
		}
		starred = append(starred, model.StarredMessage{SessionID: sessionID, SessionTitle: title, Message: msg})
	}
	return starred, rows.Err()
}

// SaveUser replaces the singleton profile row.
func (r *sqliteRepository) SaveUser(ctx context.Context, user *model.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
		return fmt.Errorf("could not clear previous user: %w", err)
	}
	_, err = tx.ExecContext(ctx, "INSERT INTO users (id, display_name, email, avatar) VALUES (?, ?, ?, ?)",
		user.ID, user.DisplayName, user.Email, user.Avatar)
	if err != nil {
		return fmt.Errorf("could not insert user: %w", err)
	}
	return tx.Commit()
}

func (r *sqliteRepository) GetUser(ctx context.Context) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, display_name, email, avatar FROM users LIMIT 1")
	var user model.User
	var avatar sql.NullString
	err := row.Scan(&user.ID, &user.DisplayName, &user.Email, &avatar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Avatar = avatar.String
	return &user, nil
}

func (r *sqliteRepository) DeleteUser(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users")
	return err
}

func (r *sqliteRepository) GetSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, rows.Err()
}

func (r *sqliteRepository) SaveSettings(ctx context.Context, values map[string]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return fmt.Errorf("could not prepare settings upsert: %w", err)
	}
	defer stmt.Close()

	for key, value := range values {
		if _, err := stmt.ExecContext(ctx, key, value); err != nil {
			return fmt.Errorf("could not save setting %q: %w", key, err)
		}
	}
	return tx.Commit()
}

func (r *sqliteRepository) GetDraft(ctx context.Context) (string, error) {
	row := r.db.QueryRowContext(ctx, "SELECT value FROM drafts WHERE key = ?", draftKey)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (r *sqliteRepository) SaveDraft(ctx context.Context, text string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO drafts (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		draftKey, text)
	return err
}

// scanMessage reads one message row from the per-session query.
func scanMessage(rows *sql.Rows) (model.Message, error) {
	var (
		msg         model.Message
		parts       string
		suggestions sql.NullString
		latency     sql.NullInt64
	)
	if err := rows.Scan(&msg.ID, &msg.Role, &parts, &msg.Timestamp, &msg.IsImage, &msg.IsStarred, &suggestions, &latency); err != nil {
		return msg, err
	}
	if err := decodeMessageColumns(&msg, parts, suggestions, latency); err != nil {
		return msg, err
	}
	return msg, nil
}

func decodeMessageColumns(msg *model.Message, parts string, suggestions sql.NullString, latency sql.NullInt64) error {
	if err := json.Unmarshal([]byte(parts), &msg.Parts); err != nil {
		return fmt.Errorf("could not decode parts of message %s: %w", msg.ID, err)
	}
	if suggestions.Valid {
		if err := json.Unmarshal([]byte(suggestions.String), &msg.Suggestions); err != nil {
			return fmt.Errorf("could not decode suggestions of message %s: %w", msg.ID, err)
		}
	}
	if latency.Valid {
		msg.Metrics = &model.Metrics{LatencyMs: latency.Int64}
	}
	return nil
}

// requireRow converts a zero-row update into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
