package main

import (
	"log"

	"github.com/nfrund/authflow/internal/config"
	"github.com/nfrund/authflow/internal/server"
)

func main() {
	cfg := config.New()

	// Create a new server instance.
	s, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
