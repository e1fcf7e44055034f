package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"orchestrator/backend/internal/interfaces"
	"orchestrator/backend/internal/model"
	"orchestrator/backend/internal/service"
)

// ConversationHandler handles HTTP requests for sessions, messages and
// the streaming submit endpoint.
type ConversationHandler struct {
	service interfaces.ConversationService
}

func NewConversationHandler(svc interfaces.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: svc}
}

// SubmitMessageRequest is the DTO for a new submission.
type SubmitMessageRequest struct {
	SessionID string            `json:"session_id,omitempty"`
	Text      string            `json:"text"`
	Mode      string            `json:"mode,omitempty" validate:"omitempty,oneof=chat image"`
	Image     *model.InlineData `json:"image,omitempty"`
	Location  *model.Location   `json:"location,omitempty"`
}

// UpdateTitleRequest is the DTO for the manual session title update.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100" example:"My Custom Session Title"`
}

// StarRequest is the DTO for toggling a message's starred flag.
type StarRequest struct {
	Starred bool `json:"starred"`
}

// OptimizeRequest is the DTO for the prompt optimization endpoint.
type OptimizeRequest struct {
	Draft string `json:"draft" validate:"required,min=1"`
}

// OptimizeResponse carries the rewritten prompt.
type OptimizeResponse struct {
	Optimized string `json:"optimized"`
}

// SpeechRequest is the DTO for the speech synthesis endpoint.
type SpeechRequest struct {
	Text      string `json:"text" validate:"required,min=1"`
	VoiceName string `json:"voice_name,omitempty"`
}

// SpeechResponse carries base64 PCM audio (16-bit, mono, 24 kHz).
type SpeechResponse struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// HandleSubmit godoc
// @Summary      Submit a message
// @Description  Submits a user message in chat or image mode. This is a streaming SSE endpoint.
// @Tags         Sessions
// @Accept       json
// @Produce      text/event-stream
// @Param        submitRequest  body  SubmitMessageRequest  true  "Message to submit"
// @Success      200  {object}  model.StreamEvent "Stream of submission events"
// @Failure      400  {object}  ErrorResponse "Sent as a stream error event"
// @Router       /v1/sessions/messages [post]
func (h *ConversationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Error decoding submit request body", "error", err)
		sendStreamError(w, "Invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		sendStreamError(w, err.Error())
		return
	}
	if req.Text == "" && req.Image == nil {
		sendStreamError(w, "text or image is required")
		return
	}

	events := make(chan model.StreamEvent)
	go h.service.Submit(r.Context(), &service.SubmitRequest{
		SessionID: req.SessionID,
		Text:      req.Text,
		Mode:      req.Mode,
		Image:     req.Image,
		Location:  req.Location,
	}, events)

	for event := range events {
		if r.Context().Err() != nil {
			slog.Info("Client disconnected during submission stream.")
			drainEvents(events)
			return
		}
		if err := writeStreamEvent(w, event); err != nil {
			slog.Warn("Could not write to submission stream, client likely disconnected.", "error", err)
			drainEvents(events)
			return
		}
	}

	slog.Info("Finished streaming submission response.")
}

// drainEvents keeps consuming an abandoned event stream in the background
// so the submission can run to completion and release its in-flight slot.
func drainEvents(events <-chan model.StreamEvent) {
	go func() {
		for range events {
		}
	}()
}

// GetSessions godoc
// @Summary      List sessions
// @Tags         Sessions
// @Produce      json
// @Success      200  {array}  model.Session
// @Router       /v1/sessions [get]
func (h *ConversationHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if sessions == nil {
		sessions = []*model.Session{}
	}
	respondWithJSON(w, http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary      Create an empty session
// @Tags         Sessions
// @Produce      json
// @Success      201  {object}  model.Session
// @Router       /v1/sessions [post]
func (h *ConversationHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.NewSession(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// GetSession godoc
// @Summary      Get a full session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  model.FullSession
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [get]
func (h *ConversationHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	fullSession, err := h.service.GetFullSession(r.Context(), sessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullSession)
}

func (h *ConversationHandler) UpdateSessionTitle(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var req UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.UpdateSessionTitle(r.Context(), sessionID, req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *ConversationHandler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.service.DeleteSession(r.Context(), sessionID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *ConversationHandler) HandleStar(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")
	var req StarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := h.service.SetStarred(r.Context(), messageID, req.Starred); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetStarred godoc
// @Summary      List starred messages
// @Tags         Messages
// @Produce      json
// @Success      200  {array}  model.StarredMessage
// @Router       /v1/messages/starred [get]
func (h *ConversationHandler) GetStarred(w http.ResponseWriter, r *http.Request) {
	starred, err := h.service.StarredMessages(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if starred == nil {
		starred = []model.StarredMessage{}
	}
	respondWithJSON(w, http.StatusOK, starred)
}

func (h *ConversationHandler) HandleOptimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	optimized := h.service.OptimizeDraft(r.Context(), req.Draft)
	respondWithJSON(w, http.StatusOK, OptimizeResponse{Optimized: optimized})
}

// HandleSpeech godoc
// @Summary      Synthesize speech
// @Description  Renders text to base64 PCM audio with the configured voice.
// @Tags         Speech
// @Accept       json
// @Produce      json
// @Param        speechRequest  body  SpeechRequest  true  "Text to speak"
// @Success      200  {object}  SpeechResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /v1/speech [post]
func (h *ConversationHandler) HandleSpeech(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	audio, err := h.service.Speak(r.Context(), req.Text, req.VoiceName)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SpeechResponse{MimeType: audio.MimeType, Data: audio.Data})
}
