package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"orchestrator/backend/internal/api"
	"orchestrator/backend/internal/config"
	"orchestrator/backend/internal/database"
	"orchestrator/backend/internal/llm"
	"orchestrator/backend/internal/repository"
	"orchestrator/backend/internal/service"
)

// App bundles the wired application: the open database handle and the
// configured HTTP server.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

// NewApp wires the full dependency graph from the given configuration.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("could not initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.")

	repo := repository.NewSQLiteRepository(db)

	provider, err := llm.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey, cfg.StreamIdleTimeout)
	if err != nil {
		if cErr := db.Close(); cErr != nil {
			slog.Error("Failed to close database connection", "error", cErr)
		}
		return nil, fmt.Errorf("could not initialize provider client: %w", err)
	}
	providerState := service.NewProviderState(provider.HasCredential())
	if !provider.HasCredential() {
		slog.Warn("No provider API key configured. Submissions are blocked until a credential is supplied.")
	}

	settingsService := service.NewSettingsService(repo, cfg.DefaultModel, cfg.SupportModel, cfg.SystemInstruction)
	conversationService := service.NewConversationService(repo, provider, settingsService, providerState)
	profileService := service.NewProfileService(repo)

	conversationHandler := api.NewConversationHandler(conversationService)
	settingsHandler := api.NewSettingsHandler(settingsService)
	profileHandler := api.NewProfileHandler(profileService)
	providerHandler := api.NewProviderHandler(providerState, provider)
	router := api.NewRouter(conversationHandler, settingsHandler, profileHandler, providerHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
