package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"casamento/internal/auth"
	"casamento/internal/config"
	"casamento/internal/handlers"
	"casamento/internal/notify"
	"casamento/internal/prefs"
	"casamento/internal/spotify"
	"casamento/internal/store"
)

// NewRouter wires public endpoints, the guest API and the admin API.
// Public: /health, /ready, /metrics
// Guest:  /api/confirmation, /api/confirmations, /api/wedding,
//         /api/preferences, /api/spotify/token
// Admin:  DELETE /api/confirmations (X-Admin-Key)
func NewRouter(cfg config.Config, st *store.PostgresStore, notifier *notify.Notifier, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	defaultTheme := ""
	if len(cfg.Themes) > 0 {
		defaultTheme = cfg.Themes[0]
	}
	prefStore := prefs.NewStore(prefs.Preferences{Theme: defaultTheme})

	spotifyClient := spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)

	api := r.Group("/api")
	handlers.RegisterConfirmationRoutes(api, st, notifier, cfg.MaxGuests, log)
	handlers.RegisterWeddingRoutes(api, cfg.Wedding)
	handlers.RegisterPreferenceRoutes(api, prefStore, cfg.Themes, cfg.CookieSecure)
	handlers.RegisterSpotifyRoutes(api, spotifyClient, log)

	// Admin group enforces the admin key.
	admin := api.Group("/")
	admin.Use(auth.AdminKeyMiddleware(cfg.AdminKey))
	handlers.RegisterAdminRoutes(admin, st, log)

	return r
}
