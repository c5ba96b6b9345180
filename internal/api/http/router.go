package http

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"maze-warden/internal/api/ws"
	"maze-warden/internal/config"
	"maze-warden/internal/maze"
	"maze-warden/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, logger *log.Entry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	rooms := r.Group("/rooms")
	rooms.POST("", CreateRoomHandler(rm))
	rooms.GET("", ListRoomsHandler(rm))
	rooms.GET("/:code", GetRoomHandler(rm))
	rooms.DELETE("/:code", CloseRoomHandler(rm))
	rooms.POST("/:code/join", JoinRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	rooms.POST("/:code/move", MoveHandler(rm))
	rooms.POST("/:code/pass", PassHandler(rm))
	rooms.POST("/:code/skill", SkillHandler(rm))
	rooms.POST("/:code/warden", WardenHandler(rm))
	rooms.GET("/:code/path", PathHandler(rm))

	// --- WARDEN ENDPOINTS ---
	r.POST("/plan", PlanHandler(maze.NewDriver(cfg.Warden.Workers)))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config", NewConfigHandler(cfg).Get)
	r.GET("/healthz", Health)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func requestLogger(logger *log.Entry) gin.HandlerFunc {
	entry := logger.WithField("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := log.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		if c.Writer.Status() >= 500 {
			entry.WithFields(fields).Error("request")
			return
		}
		entry.WithFields(fields).Debug("request")
	}
}
