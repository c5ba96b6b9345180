package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maze-warden/internal/config"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// Get returns the effective server configuration
// @Summary Get server configuration
// @Description Returns board size, warden workers and wall budget, and skill cooldowns in effect
// @Tags Config
// @Produce json
// @Success 200 {object} config.Config
// @Router /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg)
}

// Health reports liveness
// @Summary Health check
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
