package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ironlog/internal/infra"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db: db,
	}
}

// Health godoc
// @Summary Liveness check including database reachability
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	database := "up"
	if err := infra.Ping(h.db); err != nil {
		database = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": database,
	})
}
