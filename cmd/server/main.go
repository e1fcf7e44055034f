package main

import (
	"os"

	"orchestrator/backend/internal/app"
)

// @title          Orchestrator API
// @version        1.0
// @description    Backend API for the Orchestrator chat application.
// @BasePath       /api
func main() {
	os.Exit(app.Run())
}
