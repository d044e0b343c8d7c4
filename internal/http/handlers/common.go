package handlers

import (
	"database/sql"
	"time"

	"clicktoride/internal/catalog"
	"clicktoride/internal/services"
	"clicktoride/internal/session"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every dependency the HTTP surface needs. All fields are
// injected at startup; nothing reaches for package globals.
type Handlers struct {
	Catalog  catalog.Catalog
	Bookings services.BookingService
	Listing  services.ListingService
	Auth     services.AuthService
	Docs     services.DocsService
	Sessions *session.Manager
	Grace    time.Duration
	DB       *sql.DB
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": requestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// popFlash pulls the one-shot flash out of the session, persisting the
// removal, and returns it for the current render.
func (h Handlers) popFlash(c *gin.Context, st *session.State) *session.Flash {
	if st.Flash == nil {
		return nil
	}
	flash := st.Flash
	st.Flash = nil
	h.Sessions.Write(c, *st)
	return flash
}
