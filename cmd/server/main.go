package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/gigagent/internal/config"
	"github.com/nfrund/gigagent/internal/logging"
	"github.com/nfrund/gigagent/internal/server"
)

func main() {
	cfg := config.New()
	logging.New(cfg)

	// Create a new server instance.
	s := server.New(cfg)

	// Register and boot the modules. An invalid content catalog stops here.
	if err := s.Boot(context.Background()); err != nil {
		slog.Error("Failed to boot modules", "error", err)
		os.Exit(1)
	}

	// Register the remaining application routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
