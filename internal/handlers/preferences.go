package handlers

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"casamento/internal/prefs"
)

const sessionCookie = "session_id"

// sessionCookieMaxAge keeps the selection stable across visits without
// pretending it is durable state.
const sessionCookieMaxAge = 30 * 24 * 60 * 60

// sessionID returns the request's session ID, minting a new one (and
// setting the cookie) on first contact.
func sessionID(c *gin.Context, secure bool) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.New().String()
	c.SetCookie(sessionCookie, id, sessionCookieMaxAge, "/", "", secure, true)
	return id
}

// RegisterPreferenceRoutes exposes the session's presentation state: the
// background-player track and the active theme. Every page in one session
// reads the same selection; no ambient global is involved.
//
// GET /preferences
// PUT /preferences
func RegisterPreferenceRoutes(r gin.IRoutes, ps *prefs.Store, themes []string, cookieSecure bool) {
	r.GET("/preferences", func(c *gin.Context) {
		c.JSON(http.StatusOK, ps.Get(sessionID(c, cookieSecure)))
	})

	r.PUT("/preferences", func(c *gin.Context) {
		var req prefs.Preferences
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		sid := sessionID(c, cookieSecure)
		current := ps.Get(sid)

		// Partial update: empty fields keep the current selection.
		if req.Track != "" {
			current.Track = req.Track
		}
		if req.Theme != "" {
			if !slices.Contains(themes, req.Theme) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown theme"})
				return
			}
			current.Theme = req.Theme
		}

		ps.Set(sid, current)
		c.JSON(http.StatusOK, current)
	})
}
