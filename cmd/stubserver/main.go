package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"inventory-dashboard-connector/internal/config"
	"inventory-dashboard-connector/internal/stubserver"
)

// Tokens expire after the same window the production API uses.
const tokenValidity = 24 * time.Hour

func main() {
	cfg := config.LoadConfig()

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev-secret"
		slog.Warn("SECRET_KEY not set, using development secret")
	}

	store := stubserver.SeedStore()
	auth := stubserver.NewAuthManager(secret, tokenValidity)
	defer auth.Stop()

	router := stubserver.NewRouter(store, auth)

	slog.Info("Starting stub inventory API server",
		"port", cfg.Port,
		"environment", cfg.Environment)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
