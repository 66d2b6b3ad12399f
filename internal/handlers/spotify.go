package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"casamento/internal/spotify"
)

// RegisterSpotifyRoutes exposes the cached client-credentials token the
// collaborative-playlist widget uses for catalog search.
//
// GET /spotify/token
func RegisterSpotifyRoutes(r gin.IRoutes, client *spotify.Client, log zerolog.Logger) {
	r.GET("/spotify/token", func(c *gin.Context) {
		tok, err := client.Token(c.Request.Context())
		if err != nil {
			if errors.Is(err, spotify.ErrNotConfigured) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "spotify not configured"})
				return
			}
			log.Error().Err(err).Msg("spotify token exchange failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "spotify token exchange failed"})
			return
		}

		c.JSON(http.StatusOK, tok)
	})
}
