package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/spst-logistics/spst-backend/internal/config"
	"github.com/spst-logistics/spst-backend/internal/identity"
	"github.com/spst-logistics/spst-backend/internal/server"
	"github.com/spst-logistics/spst-backend/internal/service"
	"github.com/spst-logistics/spst-backend/internal/storage"
	"github.com/spst-logistics/spst-backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	authClient, err := identity.NewAuthClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatalf("firebase auth init error: %v", err)
	}

	places, err := service.NewPlacesService(cfg.MapsAPIKey)
	if err != nil {
		log.Fatalf("maps client init error: %v", err)
	}

	uploader, err := storage.New(ctx, cfg.DocumentsBucket, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatalf("storage client init error: %v", err)
	}

	srv := server.New(server.Deps{
		Cfg:      cfg,
		Verifier: authClient,
		Issuer:   authClient,
		Store:    store.New(cfg.AirtableAPIKey, cfg.AirtableBaseID),
		Mailer:   service.NewResendMailer(cfg.ResendAPIKey),
		Places:   places,
		Uploader: uploader,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
