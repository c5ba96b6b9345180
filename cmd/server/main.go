package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	httpapi "maze-warden/internal/api/http"
	"maze-warden/internal/api/ws"
	"maze-warden/internal/config"
	"maze-warden/internal/logging"
	"maze-warden/internal/room"
	"maze-warden/internal/store"

	// swagger packages
	_ "maze-warden/docs"
)

// @title Maze Warden API
// @version 1.0
// @description Rooms, turns and the adversarial wall-placing warden (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	logger := logging.New(cfg.Log)
	entry := log.NewEntry(logger)

	if logger.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	mem := store.NewMemoryStore()
	hub := ws.NewHub(entry)
	rm := room.NewManager(mem, cfg, hub, entry)
	hub.SetManager(rm)
	r := httpapi.NewRouter(rm, hub, cfg, entry)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	entry.WithFields(log.Fields{
		"addr":       cfg.HTTPAddr,
		"board_size": cfg.BoardSize,
		"workers":    cfg.Warden.Workers,
	}).Info("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		entry.WithError(err).Fatal("server stopped")
	}
}
