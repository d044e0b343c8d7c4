package handlers

import (
	"net/http"

	"clicktoride/internal/session"
	"clicktoride/internal/utils"

	"github.com/gin-gonic/gin"
)

// LoginPage renders the login view, surfacing any pending flash.
// GET /login
func (h Handlers) LoginPage(c *gin.Context) {
	st := h.Sessions.Read(c)
	payload := gin.H{}
	if flash := h.popFlash(c, &st); flash != nil {
		payload["flash"] = flash
	}
	c.JSON(http.StatusOK, payload)
}

// Login verifies the operator credential and marks the session. Failures get
// one generic message regardless of which part was wrong.
// POST /login
func (h Handlers) Login(c *gin.Context) {
	username := utils.TrimOrEmpty(c.PostForm("username"))
	password := c.PostForm("password")

	st := h.Sessions.Read(c)
	admin, ok := h.Auth.Verify(username, password)
	if !ok {
		st.Flash = &session.Flash{Message: "Invalid username or password.", Category: "danger"}
		h.Sessions.Write(c, st)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	utils.LogEvent(requestID(c), "auth", "login", "username="+admin.Username)

	st.AdminID = admin.ID
	st.Flash = &session.Flash{Message: "Login successful.", Category: "success"}
	h.Sessions.Write(c, st)
	c.Redirect(http.StatusSeeOther, "/admin/bookings")
}

// Logout drops the admin marker. The visitor's ticket, if any, survives.
// GET /logout
func (h Handlers) Logout(c *gin.Context) {
	st := h.Sessions.Read(c)
	st.AdminID = 0
	st.Flash = &session.Flash{Message: "You have been logged out.", Category: "info"}
	h.Sessions.Write(c, st)
	c.Redirect(http.StatusFound, "/login")
}
