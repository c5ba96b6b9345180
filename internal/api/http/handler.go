package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"maze-warden/internal/maze"
	"maze-warden/internal/room"
)

// @Summary Create new room
// @Description Create a room with the caller seated as the first player
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Player and board options"
// @Success 201 {object} RoomResponse
// @Failure 400 {object} ErrorResponse
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWith(c, err)
			return
		}
		ch, err := character(req.Character)
		if err != nil {
			abortWith(c, err)
			return
		}
		rx, err := rm.CreateRoom(req.PlayerName, room.Options{
			Size:       req.Size,
			Mode:       room.Mode(req.Mode),
			WallBudget: req.WallBudget,
			Character:  ch,
		})
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusCreated, RoomResponse{Room: rx, Player: &rx.Players[0]})
	}
}

// @Summary List rooms
// @Tags Room
// @Produce json
// @Success 200 {array} room.Room
// @Router /rooms [get]
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rm.List())
	}
}

// @Summary Join a room
// @Description Seat a second player before the first turn
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body JoinRoomRequest false "Player name"
// @Success 200 {object} RoomResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{code}/join [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				abortWith(c, err)
				return
			}
		}
		ch, err := character(req.Character)
		if err != nil {
			abortWith(c, err)
			return
		}
		rx, p, err := rm.Join(c.Param("code"), req.PlayerName, ch)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, RoomResponse{Room: rx, Player: &p})
	}
}

// @Summary Get room state
// @Tags Room
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} RoomResponse
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Param("code"))
		if !ok {
			abortWith(c, room.ErrRoomNotFound)
			return
		}
		c.JSON(http.StatusOK, RoomResponse{Room: rx, Rank: rm.Rank(rx)})
	}
}

// @Summary Close a room
// @Tags Room
// @Param code path string true "Room code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{code} [delete]
func CloseRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rm.Close(c.Param("code")); err != nil {
			abortWith(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary Player makes a move
// @Description Step the current player one cell; the warden answers unless the move wins
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body MoveRequest true "Move"
// @Success 200 {object} room.TurnResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{code}/move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWith(c, err)
			return
		}
		res, err := rm.Move(c.Param("code"), req.PlayerID, req.Direction)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Player passes
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body PassRequest true "Player"
// @Success 200 {object} room.TurnResult
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{code}/pass [post]
func PassHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PassRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWith(c, err)
			return
		}
		res, err := rm.Pass(c.Param("code"), req.PlayerID)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Player uses a skill
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body SkillRequest true "Skill"
// @Success 200 {object} room.TurnResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{code}/skill [post]
func SkillHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SkillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWith(c, err)
			return
		}
		res, err := rm.UseSkill(c.Param("code"), req.PlayerID, req.Skill)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Force a warden turn
// @Description Lets the warden act out of turn, for debugging
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} maze.Decision
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{code}/warden [post]
func WardenHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		dec, err := rm.WardenTurn(c.Param("code"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, dec)
	}
}

// @Summary Shortest path of a player
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Param player_id query string true "Player ID"
// @Success 200 {object} PathResponse
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{code}/path [get]
func PathHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, d, err := rm.Path(c.Param("code"), c.Query("player_id"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, PathResponse{Path: path, Distance: d, Unreachable: d == maze.Unreachable})
	}
}

// @Summary Plan a warden move for any board
// @Description Stateless: takes a snapshot and returns the warden's action. With explain=1 the full decision and candidate list are included.
// @Tags Warden
// @Accept json
// @Produce json
// @Param explain query bool false "Include decision and candidates"
// @Param request body PlanRequest true "Snapshot"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse
// @Router /plan [post]
func PlanHandler(d *maze.Driver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWith(c, err)
			return
		}
		var opts []maze.PlanOption
		if req.MutationsOnly {
			opts = append(opts, maze.WithoutPlacements())
		}
		snap := req.Snapshot()
		dec, err := d.Decide(snap, opts...)
		if err != nil {
			abortWith(c, fmt.Errorf("plan: %w", err))
			return
		}
		resp := PlanResponse{Action: dec.Action}
		if explain := c.Query("explain"); explain == "1" || explain == "true" {
			g, err := snap.Grid()
			if err != nil {
				abortWith(c, err)
				return
			}
			resp.Decision = &dec
			resp.Candidates = maze.GenerateCandidates(g)
			if req.MutationsOnly {
				resp.Candidates = resp.Candidates[len(resp.Candidates)-g.Len():]
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}
