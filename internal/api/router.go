package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "orchestrator/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all the application's
// routes.
func NewRouter(
	conversationHandler *ConversationHandler,
	settingsHandler *SettingsHandler,
	profileHandler *ProfileHandler,
	providerHandler *ProviderHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe for container orchestration.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes get a request timeout so client connections
		// cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/settings", settingsHandler.GetSettings)
			r.Put("/settings", settingsHandler.UpdateSettings)

			r.Get("/sessions", conversationHandler.GetSessions)
			r.Post("/sessions", conversationHandler.CreateSession)
			r.Get("/sessions/{sessionID}", conversationHandler.GetSession)
			r.Put("/sessions/{sessionID}/title", conversationHandler.UpdateSessionTitle)
			r.Delete("/sessions/{sessionID}", conversationHandler.HandleDeleteSession)
			r.Post("/messages/{messageID}/star", conversationHandler.HandleStar)
			r.Get("/messages/starred", conversationHandler.GetStarred)

			r.Post("/prompt/optimize", conversationHandler.HandleOptimize)
			r.Post("/speech", conversationHandler.HandleSpeech)

			r.Get("/user", profileHandler.GetUser)
			r.Post("/user", profileHandler.HandleLogin)
			r.Delete("/user", profileHandler.HandleLogout)
			r.Get("/draft", profileHandler.GetDraft)
			r.Put("/draft", profileHandler.SaveDraft)

			r.Get("/provider/status", providerHandler.GetStatus)
			r.Post("/provider/retry", providerHandler.HandleRetry)
			r.Post("/provider/credential", providerHandler.HandleCredential)
		})

		// Streaming routes must not have a timeout; they hold a connection
		// open for an extended period.
		r.Group(func(r chi.Router) {
			r.Post("/sessions/messages", conversationHandler.HandleSubmit)
		})
	})

	return r
}
