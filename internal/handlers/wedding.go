package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casamento/internal/config"
)

// RegisterWeddingRoutes serves the celebration details the informational
// pages render (home, schedule, lodging hero blocks).
//
// GET /wedding
func RegisterWeddingRoutes(r gin.IRoutes, w config.Wedding) {
	r.GET("/wedding", func(c *gin.Context) {
		c.JSON(http.StatusOK, w)
	})
}
