package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/clubnatacion/swimclub-backend/config"
	athrepo "github.com/clubnatacion/swimclub-backend/internal/athletes/repository"
	attrepo "github.com/clubnatacion/swimclub-backend/internal/attendance/repository"
	"github.com/clubnatacion/swimclub-backend/internal/bootstrap"
	"github.com/clubnatacion/swimclub-backend/internal/meta"
	mirrorrepo "github.com/clubnatacion/swimclub-backend/internal/mirror/repository"
	mirrorservice "github.com/clubnatacion/swimclub-backend/internal/mirror/service"
	"github.com/clubnatacion/swimclub-backend/internal/storage/postgres"
)

// The worker mirrors changed Firestore collections into Postgres for
// reporting. It runs one pass at startup, then every 15 minutes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Postgres.DSN == "" {
		log.Fatal("POSTGRES_DSN is required for the mirror worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fsClient, err := bootstrap.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fsClient.Close()

	db, err := postgres.NewConnection(&cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	mirrorRepo := mirrorrepo.NewMirrorRepository(db)
	if err := mirrorRepo.EnsureSchema(); err != nil {
		log.Fatalf("mirror schema: %v", err)
	}

	syncer := mirrorservice.NewSyncer(
		meta.NewStamper(fsClient),
		athrepo.NewAthleteRepository(fsClient),
		attrepo.NewAttendanceRepository(fsClient),
		mirrorRepo,
	)

	syncer.SyncOnce(ctx)

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc("0 */15 * * * *", func() { syncer.SyncOnce(ctx) }); err != nil {
		log.Fatalf("cron: %v", err)
	}
	c.Start()
	log.Println("mirror worker started (syncing every 15 minutes)")

	<-ctx.Done()
	<-c.Stop().Done()
	log.Println("mirror worker stopped")
}
