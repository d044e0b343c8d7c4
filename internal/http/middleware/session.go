package middleware

import (
	"net/http"

	"clicktoride/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates admin-only routes. An unauthenticated visitor is sent to
// the login page with a flash instead of a bare 401, since these are browser
// flows.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := sessions.Read(c)
		if !st.LoggedIn() {
			st.Flash = &session.Flash{Message: "Please log in to access admin page.", Category: "warning"}
			sessions.Write(c, st)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
