package http

import (
	"maze-warden/internal/maze"
	"maze-warden/internal/room"
)

// CreateRoomRequest represents the payload for POST /rooms.
type CreateRoomRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
	Character  string `json:"character" binding:"omitempty,oneof=warrior mage scout"`
	Size       int    `json:"size" binding:"omitempty,min=3,max=25"`
	Mode       string `json:"mode" binding:"omitempty,oneof=duel race"`
	WallBudget int    `json:"wall_budget" binding:"omitempty,min=0"`
}

// JoinRoomRequest represents the payload for POST /rooms/:code/join.
type JoinRoomRequest struct {
	PlayerName string `json:"player_name"`
	Character  string `json:"character" binding:"omitempty,oneof=warrior mage scout"`
}

// MoveRequest represents a one-cell step of the current player.
type MoveRequest struct {
	PlayerID  string         `json:"player_id" binding:"required"`
	Direction room.Direction `json:"direction" binding:"required,oneof=up down left right"`
}

type PassRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// SkillRequest names one of wall_destroyer, teleport or exit_scanner.
type SkillRequest struct {
	PlayerID string     `json:"player_id" binding:"required"`
	Skill    room.Skill `json:"skill" binding:"required" swaggertype:"string" enums:"wall_destroyer,teleport,exit_scanner"`
}

// PlanRequest is a free-standing board for the stateless planner.
type PlanRequest struct {
	Size          int           `json:"size" binding:"required,min=2,max=25"`
	Walls         []maze.Wall   `json:"walls" binding:"max=1250"`
	Players       []maze.Player `json:"players" binding:"max=8"`
	MutationsOnly bool          `json:"mutations_only"`
}

func (r PlanRequest) Snapshot() maze.Snapshot {
	return maze.Snapshot{Size: r.Size, Walls: r.Walls, Players: r.Players}
}

type PlanResponse struct {
	Action     maze.Action      `json:"action"`
	Decision   *maze.Decision   `json:"decision,omitempty"`
	Candidates []maze.Candidate `json:"candidates,omitempty"`
}

type RoomResponse struct {
	Room   room.Room      `json:"room"`
	Player *room.Player   `json:"player,omitempty"`
	Rank   []room.RankRow `json:"rank,omitempty"`
}

type PathResponse struct {
	Path        []maze.Pos `json:"path"`
	Distance    int        `json:"distance"`
	Unreachable bool       `json:"unreachable"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// character parses an optional character name; empty means the default.
func character(name string) (room.Character, error) {
	var ch room.Character
	if name == "" {
		return ch, nil
	}
	err := ch.UnmarshalText([]byte(name))
	return ch, err
}
