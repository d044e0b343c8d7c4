// Package session keeps per-visitor state in a signed cookie: the passenger's
// current ticket summary, the admin login marker, and a one-shot flash
// message. The signing secret is drawn fresh at every process start, so a
// restart deliberately invalidates all sessions and forces re-login.
package session

import (
	"crypto/rand"
	"net/http"
	"time"

	"clicktoride/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName = "ctr_session"
	maxAge     = 24 * time.Hour
)

// TicketSummary is what the reserve flow publishes for the ticket view. It is
// deliberately a snapshot of what the passenger just saw, not the stored row.
type TicketSummary struct {
	Code       string                  `json:"code"`
	Route      catalog.RouteDefinition `json:"route"`
	Name       string                  `json:"name"`
	Date       string                  `json:"date"`
	Time       string                  `json:"time"`
	Passengers int                     `json:"passengers"`
}

// Flash is a one-shot notice surfaced on the next rendered page.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// State is everything a session cookie can carry. The zero value means "no
// session".
type State struct {
	AdminID int64          `json:"admin_id,omitempty"`
	Ticket  *TicketSummary `json:"ticket,omitempty"`
	Flash   *Flash         `json:"flash,omitempty"`
}

// LoggedIn reports whether the admin marker is set.
func (s State) LoggedIn() bool {
	return s.AdminID > 0
}

type sessionClaims struct {
	State State `json:"state"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies.
type Manager struct {
	secret []byte
	now    func() time.Time
}

// NewManager creates a manager with a fresh random secret.
func NewManager() *Manager {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		panic("session: cannot read random secret: " + err.Error())
	}
	return &Manager{secret: secret, now: time.Now}
}

// Read parses the session cookie. Missing, expired, tampered or
// foreign-signed cookies all read as an empty state.
func (m *Manager) Read(c *gin.Context) State {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return State{}
	}
	return m.decode(raw)
}

// Write signs the state and sets the cookie. An all-empty state clears the
// cookie instead.
func (m *Manager) Write(c *gin.Context, st State) {
	if st == (State{}) {
		m.Clear(c)
		return
	}

	token, err := m.encode(st)
	if err != nil {
		// A signing failure only loses the visitor's session; the booking
		// row itself is already safe in the store.
		m.Clear(c)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, token, int(maxAge.Seconds()), "/", "", false, true)
}

// Clear drops the session cookie.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}

func (m *Manager) encode(st State) (string, error) {
	now := m.now()
	claims := sessionClaims{
		State: st,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) decode(raw string) State {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return State{}
	}
	return claims.State
}
