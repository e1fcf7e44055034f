package api

import (
	"encoding/json"
	"net/http"

	"orchestrator/backend/internal/interfaces"
)

// ProfileHandler handles HTTP requests for the singleton user profile and
// the input draft.
type ProfileHandler struct {
	service interfaces.ProfileService
}

func NewProfileHandler(svc interfaces.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// LoginRequest is the DTO for creating the user profile.
type LoginRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Avatar      string `json:"avatar,omitempty"`
}

// DraftRequest is the DTO for saving the unsent input draft.
type DraftRequest struct {
	Text string `json:"text"`
}

// DraftResponse carries the stored draft.
type DraftResponse struct {
	Text string `json:"text"`
}

func (h *ProfileHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// HandleLogin godoc
// @Summary      Log in
// @Description  Creates the singleton user profile, replacing any previous one.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Profile data"
// @Success      201  {object}  model.User
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/user [post]
func (h *ProfileHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	user, err := h.service.Login(r.Context(), req.DisplayName, req.Email, req.Avatar)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

func (h *ProfileHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *ProfileHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	text, err := h.service.GetDraft(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, DraftResponse{Text: text})
}

func (h *ProfileHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := h.service.SaveDraft(r.Context(), req.Text); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
