package ws

import "maze-warden/internal/room"

// RoomManager is the part of room.Manager the hub forwards client actions to.
type RoomManager interface {
	Get(code string) (room.Room, bool)
	Move(code, playerID string, dir room.Direction) (room.TurnResult, error)
	Pass(code, playerID string) (room.TurnResult, error)
	UseSkill(code, playerID string, skill room.Skill) (room.TurnResult, error)
}
