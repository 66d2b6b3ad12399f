package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"casamento/internal/metrics"
	"casamento/internal/models"
	"casamento/internal/notify"
	"casamento/internal/stats"
	"casamento/internal/store"
)

// confirmationsResponse is the GET /api/confirmations payload: the full
// record list newest-first plus the aggregate computed over that same list,
// so the two can never drift apart within one response.
type confirmationsResponse struct {
	Confirmacoes []models.Confirmation `json:"confirmacoes"`
	Stats        stats.Aggregate       `json:"stats"`
}

// looksLikeEmail applies the same light shape check the form does.
// Deliverability is not our problem; a missing @ is.
func looksLikeEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	return ok && local != "" && strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// RegisterConfirmationRoutes registers the guest-facing RSVP endpoints.
//
// POST /confirmation
//   - Durable: returns success only after the DB write completes
//   - Resubmission creates a second record; dedup by guest is not wanted
//     (several household members may answer under one email)
//
// GET /confirmations
//   - Full list newest-first plus aggregate statistics
func RegisterConfirmationRoutes(r gin.IRoutes, st store.ConfirmationStore, notifier *notify.Notifier, maxGuests int, log zerolog.Logger) {
	r.POST("/confirmation", func(c *gin.Context) {
		var req models.ConfirmationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)

		// Required fields per contract.
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
			return
		}
		if !looksLikeEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email must look like an email address"})
			return
		}
		if req.Attending == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "attending required"})
			return
		}

		attending, ok := models.ParseAttendance(req.Attending)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "attending must be yes, no or maybe"})
			return
		}

		// Clamp instead of reject: the form has no way to produce these,
		// so a stray value is noise, not a conversation worth having.
		guests := req.Guests
		if guests < 0 {
			guests = 0
		}
		if guests > maxGuests {
			guests = maxGuests
		}

		rec := models.Confirmation{
			ID:        uuid.New(),
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			Attending: attending,
			Guests:    guests,
			CreatedAt: time.Now().UTC(),
		}

		if err := st.InsertConfirmation(c.Request.Context(), rec); err != nil {
			log.Error().Err(err).Msg("confirmation insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}

		metrics.ConfirmationsReceived.WithLabelValues(string(attending)).Inc()
		log.Info().
			Str("id", rec.ID.String()).
			Str("attending", string(attending)).
			Int("guests", guests).
			Msg("confirmation received")

		// Fire-and-forget: the guest's request never waits on Telegram.
		go notifier.ConfirmationReceived(rec)

		c.JSON(http.StatusCreated, models.ConfirmationResponse{ID: rec.ID, Success: true})
	})

	r.GET("/confirmations", func(c *gin.Context) {
		records, err := st.ListConfirmations(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("confirmation list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		c.JSON(http.StatusOK, confirmationsResponse{
			Confirmacoes: records,
			Stats:        stats.Compute(records),
		})
	})
}

// RegisterAdminRoutes registers the admin-only endpoints; the caller is
// expected to mount them behind the admin-key middleware.
//
// DELETE /confirmations?id=...
func RegisterAdminRoutes(r gin.IRoutes, st store.ConfirmationStore, log zerolog.Logger) {
	r.DELETE("/confirmations", func(c *gin.Context) {
		rawID := c.Query("id")
		if rawID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
			return
		}

		id, err := uuid.Parse(rawID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a UUID"})
			return
		}

		if err := st.DeleteConfirmation(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "confirmation not found"})
				return
			}
			log.Error().Err(err).Str("id", rawID).Msg("confirmation delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db delete failed"})
			return
		}

		metrics.ConfirmationsDeleted.Inc()
		log.Info().Str("id", rawID).Msg("confirmation deleted")

		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
