package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orchestrator/backend/internal/api"
	app_errors "orchestrator/backend/internal/errors"
	"orchestrator/backend/internal/interfaces/mocks"
	"orchestrator/backend/internal/llm"
	"orchestrator/backend/internal/model"
)

func setupConversationHandler(t *testing.T) (*api.ConversationHandler, *mocks.MockConversationService) {
	mockSvc := mocks.NewMockConversationService(t)
	return api.NewConversationHandler(mockSvc), mockSvc
}

// addChiURLParams simulates how the chi router injects URL parameters into
// the request's context.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestConversationHandler_HandleSubmit(t *testing.T) {
	t.Run("Success - Events are framed as SSE", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)

		mockSvc.On("Submit", mock.Anything, mock.AnythingOfType("*service.SubmitRequest"), mock.Anything).
			Run(func(args mock.Arguments) {
				events := args.Get(2).(chan<- model.StreamEvent)
				events <- model.StreamEvent{SessionID: "session123", MessageID: "msg1"}
				events <- model.StreamEvent{Content: "Hi"}
				events <- model.StreamEvent{Done: true, MessageID: "msg2"}
				close(events)
			}).Once()

		body := strings.NewReader(`{"text": "Hello", "mode": "chat"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/messages", body)
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))

		payload := rr.Body.String()
		assert.Contains(t, payload, `"session_id":"session123"`)
		assert.Contains(t, payload, `"content":"Hi"`)
		assert.Contains(t, payload, `"done":true`)
		assert.Equal(t, 3, strings.Count(payload, "data: "))
	})

	t.Run("Success - Disconnected client does not stall the submission", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)

		ctx, cancel := context.WithCancel(context.Background())
		produced := make(chan struct{})
		mockSvc.On("Submit", mock.Anything, mock.AnythingOfType("*service.SubmitRequest"), mock.Anything).
			Run(func(args mock.Arguments) {
				events := args.Get(2).(chan<- model.StreamEvent)
				defer close(events)
				events <- model.StreamEvent{SessionID: "session123", MessageID: "msg1"}
				cancel()
				// These sends must not block once the handler has stopped
				// writing to the response.
				events <- model.StreamEvent{Content: "Hi"}
				events <- model.StreamEvent{Content: " there!"}
				close(produced)
			}).Once()

		body := strings.NewReader(`{"text": "Hello", "mode": "chat"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/messages", body).WithContext(ctx)
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		select {
		case <-produced:
		case <-time.After(2 * time.Second):
			t.Fatal("submission could not finish emitting after the disconnect")
		}
	})

	t.Run("Failure - Malformed body becomes a stream error", func(t *testing.T) {
		handler, _ := setupConversationHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/messages", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Contains(t, rr.Body.String(), "event: error")
		assert.Contains(t, rr.Body.String(), "Invalid request body")
	})

	t.Run("Failure - Unknown mode is rejected", func(t *testing.T) {
		handler, _ := setupConversationHandler(t)

		body := strings.NewReader(`{"text": "Hello", "mode": "video"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/messages", body)
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Contains(t, rr.Body.String(), "event: error")
	})

	t.Run("Failure - Empty submission is rejected before the service", func(t *testing.T) {
		handler, _ := setupConversationHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/messages", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Contains(t, rr.Body.String(), "event: error")
		assert.Contains(t, rr.Body.String(), "text or image is required")
	})
}

func TestConversationHandler_GetSessions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)

		expected := []*model.Session{{ID: "session123", Title: "Topic"}}
		mockSvc.On("ListSessions", mock.Anything).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
		rr := httptest.NewRecorder()
		handler.GetSessions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []*model.Session
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, expected, got)
	})

	t.Run("Success - No sessions yields an empty array", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("ListSessions", mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
		rr := httptest.NewRecorder()
		handler.GetSessions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Failure - Service error", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("ListSessions", mock.Anything).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
		rr := httptest.NewRecorder()
		handler.GetSessions(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestConversationHandler_GetSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)

		full := &model.FullSession{
			Session:  model.Session{ID: "session123", Title: "Topic"},
			Messages: []model.Message{{ID: "m1"}},
		}
		mockSvc.On("GetFullSession", mock.Anything, "session123").Return(full, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/session123", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "session123"})
		rr := httptest.NewRecorder()
		handler.GetSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Unknown session", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("GetFullSession", mock.Anything, "missing").Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/missing", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "missing"})
		rr := httptest.NewRecorder()
		handler.GetSession(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestConversationHandler_UpdateSessionTitle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("UpdateSessionTitle", mock.Anything, "session123", "Renamed").Return(nil).Once()

		body := strings.NewReader(`{"title": "Renamed"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/session123/title", body)
		req = addChiURLParams(req, map[string]string{"sessionID": "session123"})
		rr := httptest.NewRecorder()
		handler.UpdateSessionTitle(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Empty title fails validation", func(t *testing.T) {
		handler, _ := setupConversationHandler(t)

		body := strings.NewReader(`{"title": ""}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/session123/title", body)
		req = addChiURLParams(req, map[string]string{"sessionID": "session123"})
		rr := httptest.NewRecorder()
		handler.UpdateSessionTitle(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Unknown session", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("UpdateSessionTitle", mock.Anything, "missing", "Renamed").Return(app_errors.ErrNotFound).Once()

		body := strings.NewReader(`{"title": "Renamed"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/missing/title", body)
		req = addChiURLParams(req, map[string]string{"sessionID": "missing"})
		rr := httptest.NewRecorder()
		handler.UpdateSessionTitle(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestConversationHandler_HandleDeleteSession(t *testing.T) {
	handler, mockSvc := setupConversationHandler(t)
	mockSvc.On("DeleteSession", mock.Anything, "session123").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/session123", nil)
	req = addChiURLParams(req, map[string]string{"sessionID": "session123"})
	rr := httptest.NewRecorder()
	handler.HandleDeleteSession(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestConversationHandler_HandleStar(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("SetStarred", mock.Anything, "msg123", true).Return(nil).Once()

		body := strings.NewReader(`{"starred": true}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/messages/msg123/star", body)
		req = addChiURLParams(req, map[string]string{"messageID": "msg123"})
		rr := httptest.NewRecorder()
		handler.HandleStar(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Unknown message", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("SetStarred", mock.Anything, "missing", false).Return(app_errors.ErrNotFound).Once()

		body := strings.NewReader(`{"starred": false}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/messages/missing/star", body)
		req = addChiURLParams(req, map[string]string{"messageID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleStar(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestConversationHandler_GetStarred(t *testing.T) {
	handler, mockSvc := setupConversationHandler(t)

	starred := []model.StarredMessage{{
		SessionID:    "session123",
		SessionTitle: "Topic",
		Message:      model.Message{ID: "m2", IsStarred: true},
	}}
	mockSvc.On("StarredMessages", mock.Anything).Return(starred, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/messages/starred", nil)
	rr := httptest.NewRecorder()
	handler.GetStarred(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []model.StarredMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, starred, got)
}

func TestConversationHandler_HandleOptimize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("OptimizeDraft", mock.Anything, "make it gud").Return("Please improve this text.").Once()

		body := strings.NewReader(`{"draft": "make it gud"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/optimize", body)
		rr := httptest.NewRecorder()
		handler.HandleOptimize(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.OptimizeResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Please improve this text.", resp.Optimized)
	})

	t.Run("Failure - Empty draft", func(t *testing.T) {
		handler, _ := setupConversationHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/optimize", strings.NewReader(`{"draft": ""}`))
		rr := httptest.NewRecorder()
		handler.HandleOptimize(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestConversationHandler_HandleSpeech(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)

		audio := &llm.AudioResult{MimeType: "audio/pcm;rate=24000", Data: "cGNt"}
		mockSvc.On("Speak", mock.Anything, "Hello", "Puck").Return(audio, nil).Once()

		body := strings.NewReader(`{"text": "Hello", "voice_name": "Puck"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/speech", body)
		rr := httptest.NewRecorder()
		handler.HandleSpeech(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.SpeechResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "cGNt", resp.Data)
	})

	t.Run("Failure - Rate limited", func(t *testing.T) {
		handler, mockSvc := setupConversationHandler(t)
		mockSvc.On("Speak", mock.Anything, "Hello", "").Return(nil, app_errors.ErrRateLimited).Once()

		body := strings.NewReader(`{"text": "Hello"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/speech", body)
		rr := httptest.NewRecorder()
		handler.HandleSpeech(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})
}
