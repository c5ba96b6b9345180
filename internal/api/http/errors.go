package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maze-warden/internal/room"
)

var statusByErr = []struct {
	err    error
	status int
}{
	{room.ErrRoomNotFound, http.StatusNotFound},
	{room.ErrPlayerNotFound, http.StatusNotFound},
	{room.ErrNotYourTurn, http.StatusConflict},
	{room.ErrGameOver, http.StatusConflict},
	{room.ErrRoomFull, http.StatusConflict},
	{room.ErrRoomStarted, http.StatusConflict},
	{room.ErrSkillCooldown, http.StatusConflict},
}

// statusFor maps room and maze errors to a response code; anything unlisted
// is the caller's fault.
func statusFor(err error) int {
	for _, s := range statusByErr {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusBadRequest
}

func abortWith(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), ErrorResponse{Error: err.Error()})
}
