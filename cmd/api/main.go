package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foodlog-app/backend/config"
	"github.com/foodlog-app/backend/internal/api"
	"github.com/foodlog-app/backend/internal/blobstore"
	"github.com/foodlog-app/backend/internal/database"
	"github.com/foodlog-app/backend/internal/docstore"
	"github.com/foodlog-app/backend/internal/router"
	"github.com/foodlog-app/backend/internal/server"
	"github.com/foodlog-app/backend/internal/service"
	"github.com/foodlog-app/backend/internal/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	docs, cleanup, err := newDocstore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up document store: %v", err)
	}
	defer cleanup()

	foodImages, err := blobstore.NewS3Store(ctx, cfg.FoodBucket, cfg.AWSRegion)
	if err != nil {
		log.Fatalf("Failed to set up food image bucket: %v", err)
	}
	avatars, err := blobstore.NewS3Store(ctx, cfg.UserBucket, cfg.AWSRegion)
	if err != nil {
		log.Fatalf("Failed to set up avatar bucket: %v", err)
	}

	var verifier service.CredentialVerifier = service.PlaintextVerifier{}
	if cfg.AuthScheme == config.AuthBcrypt {
		verifier = service.BcryptVerifier{}
	}

	sessions := session.NewManager(cfg.IsProduction())
	authService := service.NewAuthService(docs, avatars, verifier)
	foodService := service.NewFoodService(docs, foodImages)
	profileService := service.NewProfileService(docs, avatars, verifier)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService, sessions),
		api.NewFoodHandler(foodService),
		api.NewProfileHandler(profileService, sessions),
		sessions,
		cfg.CORSOrigins,
	)

	srv := server.New(cfg.ServerHost+":"+cfg.ServerPort, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// newDocstore builds the configured document-store backend and a cleanup
// function for its connection.
func newDocstore(ctx context.Context, cfg *config.Config) (docstore.Store, func(), error) {
	switch cfg.DocstoreBackend {
	case config.BackendFirestore:
		store, err := docstore.NewFirestoreStore(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		store, err := docstore.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	default: // validated, so this is the redis backend
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return docstore.NewRedisStore(client), func() { _ = client.Close() }, nil
	}
}
