package maze

import "errors"

var (
	ErrInvalidSize   = errors.New("maze: board size out of range")
	ErrOutOfBounds   = errors.New("maze: position out of bounds")
	ErrInvalidWall   = errors.New("maze: invalid wall")
	ErrDuplicateWall = errors.New("maze: wall key already occupied")
	ErrUnknownWall   = errors.New("maze: no wall at key")
	ErrInvalidGoal   = errors.New("maze: invalid goal")
	ErrInvalidPlayer = errors.New("maze: invalid player")
)
