package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clubnatacion/swimclub-backend/config"
	"github.com/clubnatacion/swimclub-backend/internal/auth"
	"github.com/clubnatacion/swimclub-backend/internal/bootstrap"
	"github.com/clubnatacion/swimclub-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fsClient, err := bootstrap.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fsClient.Close()

	rdb, err := bootstrap.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	authClient, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase auth: %v", err)
	}

	// The reporting mirror is optional for the API: without a DSN the
	// health endpoint just reports the DB as disabled.
	var db *sql.DB
	if cfg.Postgres.DSN != "" {
		db, err = postgres.NewConnection(&cfg.Postgres)
		if err != nil {
			log.Printf("[warn] operation=postgres.connect error=%v", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config:    cfg,
		Firestore: fsClient,
		Redis:     rdb,
		DB:        db,
		Auth:      authClient,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[warn] operation=server.shutdown error=%v", err)
	}
}
