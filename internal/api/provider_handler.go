package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"orchestrator/backend/internal/llm"
	"orchestrator/backend/internal/service"
)

// ProviderHandler exposes the process-wide provider condition and its two
// recovery actions: wait-and-retry and credential swap.
type ProviderHandler struct {
	state    *service.ProviderState
	provider llm.Provider
}

func NewProviderHandler(state *service.ProviderState, provider llm.Provider) *ProviderHandler {
	return &ProviderHandler{state: state, provider: provider}
}

// ProviderStatusResponse reports the current blocking condition.
type ProviderStatusResponse struct {
	Condition string `json:"condition"`
}

// CredentialRequest is the DTO for swapping the provider API key.
type CredentialRequest struct {
	APIKey string `json:"api_key" validate:"required,min=1"`
}

// GetStatus godoc
// @Summary      Provider status
// @Description  Returns the process-wide provider condition (ok, rate_limited or missing_credential).
// @Tags         Provider
// @Produce      json
// @Success      200  {object}  ProviderStatusResponse
// @Router       /v1/provider/status [get]
func (h *ProviderHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ProviderStatusResponse{Condition: string(h.state.Condition())})
}

// HandleRetry clears the rate-limited condition. Resubmission is the
// client's responsibility.
func (h *ProviderHandler) HandleRetry(w http.ResponseWriter, r *http.Request) {
	if h.state.Condition() == service.ConditionMissingCredential {
		respondWithJSON(w, http.StatusConflict, ErrorResponse{Error: "A credential must be configured first."})
		return
	}
	h.state.Clear()
	slog.Info("Rate-limited condition cleared by client retry.")
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleCredential swaps the provider API key and clears any blocking
// condition on success.
func (h *ProviderHandler) HandleCredential(w http.ResponseWriter, r *http.Request) {
	var req CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.provider.SwapKey(r.Context(), req.APIKey); err != nil {
		respondWithError(w, err)
		return
	}
	h.state.Clear()
	slog.Info("Provider credential swapped, blocking condition cleared.")
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
