package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clicktoride/internal/catalog"
	intconfig "clicktoride/internal/config"
	router "clicktoride/internal/http"
	"clicktoride/internal/http/handlers"
	"clicktoride/internal/repositories"
	"clicktoride/internal/services"
	"clicktoride/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	cfg, err := intconfig.LoadConfig(env.ConfigFile)
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	routes, err := catalog.LoadFile(cfg.Catalog.File)
	if err != nil {
		log.Fatalf("Route catalog load failed: %v", err)
	}

	db, err := intconfig.OpenDB(env)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := repositories.EnsureSchema(db); err != nil {
		log.Fatalf("Schema bootstrap failed: %v", err)
	}

	adminRepo := repositories.AdminRepo{DB: db}
	if err := adminRepo.EnsureDefault("admin", "admin123"); err != nil {
		log.Fatalf("Admin seed failed: %v", err)
	}

	bookingRepo := repositories.BookingRepo{DB: db}

	h := handlers.Handlers{
		Catalog:  routes,
		Bookings: services.BookingService{Bookings: bookingRepo, Catalog: routes},
		Listing:  services.ListingService{Bookings: bookingRepo, PerPage: cfg.Listing.PerPage},
		Auth:     services.AuthService{Admins: adminRepo},
		Docs:     services.DocsService{},
		Sessions: session.NewManager(),
		Grace:    time.Duration(cfg.Sweep.GraceMinutes) * time.Minute,
		DB:       db,
	}

	r := router.NewRouter(h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Click to Ride listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
