package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	h "clicktoride/internal/http/handlers"
	"clicktoride/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full HTTP surface onto a Gin engine.
func NewRouter(handlers h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Public booking flow
	r.GET("/", handlers.Index)
	r.POST("/reserve", handlers.Reserve)
	r.GET("/ticket", handlers.Ticket)
	r.GET("/ticket/pdf", handlers.TicketPDF)
	r.GET("/new-booking", handlers.NewBooking)

	// Operator auth
	r.GET("/login", handlers.LoginPage)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// System
	r.GET("/health", handlers.Health)
	r.GET("/db-check", handlers.DBCheck)

	// Admin. Confirm and the sweep are deliberately open: the sweep is hit by
	// an external cron, and confirm keeps its historical behavior.
	admin := r.Group("/admin")
	admin.POST("/confirm/:id", handlers.ConfirmBooking)
	admin.GET("/auto_unconfirm", handlers.AutoUnconfirm)

	authed := admin.Group("", middleware.RequireAdmin(handlers.Sessions))
	authed.POST("/delete_booking/:id", handlers.DeleteBooking)
	authed.GET("/bookings", handlers.AdminBookings)

	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{
		"http://localhost:3000", "http://127.0.0.1:3000",
		"http://localhost:5173", "http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour
	return cfg
}
