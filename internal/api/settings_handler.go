package api

import (
	"encoding/json"
	"net/http"

	"orchestrator/backend/internal/interfaces"
	"orchestrator/backend/internal/model"
)

// SettingsHandler handles HTTP requests for application settings.
type SettingsHandler struct {
	service interfaces.SettingsService
}

func NewSettingsHandler(svc interfaces.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// GetSettings godoc
// @Summary      Get settings
// @Description  Returns the effective settings, stored values overlaid onto defaults.
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  model.Settings
// @Router       /v1/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Save settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body  model.Settings  true  "Settings record"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/settings [put]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := h.service.Save(r.Context(), &settings); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
