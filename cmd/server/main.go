package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mocar/config"
	"mocar/internal/database"
	"mocar/internal/router"
	"mocar/pkg/mailer"
	"mocar/pkg/storage"
)

func main() {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	database.SeedAdmin(db, &cfg.Admin)
	database.SeedDefaults(db)

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	mail := mailer.NewSendGrid(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail)
	if !mail.Enabled() {
		log.Printf("[mail] SENDGRID_API_KEY not set, email notifications disabled")
	}

	engine := router.Setup(cfg, db, store, mail)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}

// newStorage picks Cloudinary when credentials are configured, local disk
// otherwise.
func newStorage(cfg *config.Config) (storage.Storage, error) {
	cl := cfg.Cloudinary
	if cl.CloudName != "" && cl.APIKey != "" && cl.APISecret != "" {
		return storage.NewCloudinaryStorage(cl.CloudName, cl.APIKey, cl.APISecret)
	}
	return storage.NewDiskStorage(cfg.Upload.Dir)
}
