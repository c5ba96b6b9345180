package room

import (
	"errors"
	"fmt"
	"time"

	"maze-warden/internal/maze"
)

type Mode string

const (
	// ModeDuel sends each player to the opposite edge.
	ModeDuel Mode = "duel"
	// ModeRace sends everyone to the same exit cell.
	ModeRace Mode = "race"
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

var directions = []Direction{Up, Down, Left, Right}

var deltas = map[Direction]maze.Pos{
	Up:    {Row: -1},
	Down:  {Row: 1},
	Left:  {Col: -1},
	Right: {Col: 1},
}

func (d Direction) Valid() bool {
	_, ok := deltas[d]
	return ok
}

func (d Direction) From(p maze.Pos) maze.Pos {
	delta := deltas[d]
	return maze.Pos{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

const MaxPlayers = 2

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrRoomStarted    = errors.New("room already started")
	ErrNotYourTurn    = errors.New("not your turn or player invalid")
	ErrGameOver       = errors.New("game is over")
	ErrBadDirection   = errors.New("unknown direction")
	ErrBlocked        = errors.New("step is blocked")
	ErrOffBoard       = errors.New("step leaves the board")
	ErrUnknownSkill   = errors.New("unknown skill")
	ErrSkillCooldown  = errors.New("skill is cooling down")
	ErrNoSkillTarget  = errors.New("skill has no target")
	ErrPlayerNotFound = errors.New("player not found")
	ErrBadMode        = errors.New("unknown mode")
	ErrBadCharacter   = errors.New("unknown character")
	ErrSkillNotOwned  = errors.New("character lacks this skill")
)

type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Index     int       `json:"index"`
	Character Character `json:"character"`
	Pos       maze.Pos  `json:"pos"`
	Goal      maze.Goal `json:"goal"`
	Moves     int       `json:"moves"`
	// Turns counts the turns this player has finished.
	Turns   int           `json:"turns"`
	ReadyAt map[Skill]int `json:"readyAt"`
}

// Cooldown is how many more own turns the player waits before s is ready.
func (p Player) Cooldown(s Skill) int {
	if left := p.ReadyAt[s] - p.Turns; left > 0 {
		return left
	}
	return 0
}

type Room struct {
	ID         string         `json:"id"`
	Code       string         `json:"code"`
	Mode       Mode           `json:"mode"`
	Size       int            `json:"size"`
	Walls      []maze.Wall    `json:"walls"`
	Players    []Player       `json:"players"`
	TurnIdx    int            `json:"turnIdx"`
	TurnCount  int            `json:"turnCount"`
	WallBudget int            `json:"wallBudget"`
	WallsUsed  int            `json:"wallsUsed"`
	WinnerID   *string        `json:"winnerId,omitempty"`
	LastWarden *maze.Decision `json:"lastWarden,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func newRoom(id, code string, size int, mode Mode, budget int) *Room {
	return &Room{
		ID:         id,
		Code:       code,
		Mode:       mode,
		Size:       size,
		WallBudget: budget,
		CreatedAt:  time.Now(),
	}
}

// seat returns the start cell and goal of the i-th player to join.
func (r *Room) seat(i int) (maze.Pos, maze.Goal) {
	mid := r.Size / 2
	if r.Mode == ModeRace {
		// opposite top corners, one exit in the middle of the bottom row
		start := maze.Pos{Row: 0, Col: 0}
		if i%2 == 1 {
			start.Col = r.Size - 1
		}
		return start, maze.CellGoal(maze.Pos{Row: r.Size - 1, Col: mid})
	}
	if i%2 == 1 {
		return maze.Pos{Row: r.Size - 1, Col: mid}, maze.RowGoal(0)
	}
	return maze.Pos{Row: 0, Col: mid}, maze.RowGoal(r.Size - 1)
}

func (r *Room) current() *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return &r.Players[r.TurnIdx%len(r.Players)]
}

func (r *Room) player(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) Finished() bool { return r.WinnerID != nil }

// WallsLeft is the remaining placement budget, -1 when unlimited.
func (r *Room) WallsLeft() int {
	if r.WallBudget == 0 {
		return -1
	}
	return max(r.WallBudget-r.WallsUsed, 0)
}

// Snapshot copies the room into the value handed to the warden.
func (r *Room) Snapshot() maze.Snapshot {
	s := maze.Snapshot{
		Size:    r.Size,
		Walls:   append([]maze.Wall(nil), r.Walls...),
		Players: make([]maze.Player, 0, len(r.Players)),
	}
	for _, p := range r.Players {
		s.Players = append(s.Players, maze.Player{ID: p.ID, Pos: p.Pos, Goal: p.Goal})
	}
	return s
}

func (r *Room) grid() (*maze.Grid, error) {
	g, err := maze.NewGrid(r.Size, r.Walls)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", r.Code, err)
	}
	return g, nil
}

// apply performs a warden action on the live ledger.
func (r *Room) apply(a maze.Action) error {
	if a.Type == maze.ActionPass {
		return nil
	}
	g, err := r.grid()
	if err != nil {
		return err
	}
	next, err := g.Apply(a)
	if err != nil {
		return err
	}
	r.Walls = next.Walls()
	if a.Type == maze.ActionPlace {
		r.WallsUsed++
	}
	return nil
}

func (r *Room) clone() Room {
	c := *r
	c.Walls = append([]maze.Wall(nil), r.Walls...)
	c.Players = make([]Player, len(r.Players))
	for i, p := range r.Players {
		p.ReadyAt = make(map[Skill]int, len(r.Players[i].ReadyAt))
		for k, v := range r.Players[i].ReadyAt {
			p.ReadyAt[k] = v
		}
		c.Players[i] = p
	}
	if r.WinnerID != nil {
		w := *r.WinnerID
		c.WinnerID = &w
	}
	return c
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	ListRooms() []*Room
}
