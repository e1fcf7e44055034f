package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orchestrator/backend/internal/api"
	app_errors "orchestrator/backend/internal/errors"
	"orchestrator/backend/internal/interfaces/mocks"
	"orchestrator/backend/internal/model"
)

func setupProfileHandler(t *testing.T) (*api.ProfileHandler, *mocks.MockProfileService) {
	mockSvc := mocks.NewMockProfileService(t)
	return api.NewProfileHandler(mockSvc), mockSvc
}

func TestProfileHandler_HandleLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupProfileHandler(t)

		user := &model.User{ID: "u1", DisplayName: "Ada", Email: "ada@example.com"}
		mockSvc.On("Login", mock.Anything, "Ada", "ada@example.com", "").Return(user, nil).Once()

		body := strings.NewReader(`{"display_name": "Ada", "email": "ada@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/user", body)
		rr := httptest.NewRecorder()
		handler.HandleLogin(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got model.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "Ada", got.DisplayName)
	})

	t.Run("Failure - Missing display name", func(t *testing.T) {
		handler, _ := setupProfileHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/user", strings.NewReader(`{"email": "ada@example.com"}`))
		rr := httptest.NewRecorder()
		handler.HandleLogin(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Invalid email", func(t *testing.T) {
		handler, _ := setupProfileHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/user", strings.NewReader(`{"display_name": "Ada", "email": "not-an-email"}`))
		rr := httptest.NewRecorder()
		handler.HandleLogin(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProfileHandler_GetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupProfileHandler(t)
		mockSvc.On("Get", mock.Anything).Return(&model.User{ID: "u1", DisplayName: "Ada"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
		rr := httptest.NewRecorder()
		handler.GetUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - No profile stored", func(t *testing.T) {
		handler, mockSvc := setupProfileHandler(t)
		mockSvc.On("Get", mock.Anything).Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
		rr := httptest.NewRecorder()
		handler.GetUser(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProfileHandler_HandleLogout(t *testing.T) {
	handler, mockSvc := setupProfileHandler(t)
	mockSvc.On("Logout", mock.Anything).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/v1/user", nil)
	rr := httptest.NewRecorder()
	handler.HandleLogout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestProfileHandler_Draft(t *testing.T) {
	t.Run("SaveDraft", func(t *testing.T) {
		handler, mockSvc := setupProfileHandler(t)
		mockSvc.On("SaveDraft", mock.Anything, "half a thought").Return(nil).Once()

		body := strings.NewReader(`{"text": "half a thought"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/draft", body)
		rr := httptest.NewRecorder()
		handler.SaveDraft(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("GetDraft", func(t *testing.T) {
		handler, mockSvc := setupProfileHandler(t)
		mockSvc.On("GetDraft", mock.Anything).Return("half a thought", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/draft", nil)
		rr := httptest.NewRecorder()
		handler.GetDraft(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.DraftResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "half a thought", resp.Text)
	})
}
