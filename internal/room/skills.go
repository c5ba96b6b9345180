package room

import (
	"fmt"

	"maze-warden/internal/config"
	"maze-warden/internal/maze"
)

type Skill int

const (
	SkillWallDestroyer Skill = iota + 1
	SkillTeleport
	SkillExitScanner
)

var skillNames = map[Skill]string{
	SkillWallDestroyer: "wall_destroyer",
	SkillTeleport:      "teleport",
	SkillExitScanner:   "exit_scanner",
}

func (s Skill) String() string {
	if n, ok := skillNames[s]; ok {
		return n
	}
	return fmt.Sprintf("skill(%d)", int(s))
}

func (s Skill) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Skill) UnmarshalText(b []byte) error {
	for sk, n := range skillNames {
		if n == string(b) {
			*s = sk
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSkill, string(b))
}

// Character is the class a player picks when seated. Each class carries
// exactly one skill.
type Character int

const (
	CharacterWarrior Character = iota + 1
	CharacterMage
	CharacterScout
)

var characterNames = map[Character]string{
	CharacterWarrior: "warrior",
	CharacterMage:    "mage",
	CharacterScout:   "scout",
}

var characterSkill = map[Character]Skill{
	CharacterWarrior: SkillWallDestroyer,
	CharacterMage:    SkillTeleport,
	CharacterScout:   SkillExitScanner,
}

func (c Character) Valid() bool {
	_, ok := characterNames[c]
	return ok
}

func (c Character) Skill() Skill { return characterSkill[c] }

func (c Character) String() string {
	if n, ok := characterNames[c]; ok {
		return n
	}
	return fmt.Sprintf("character(%d)", int(c))
}

func (c Character) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Character) UnmarshalText(b []byte) error {
	for ch, n := range characterNames {
		if n == string(b) {
			*c = ch
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrBadCharacter, string(b))
}

// SkillResult reports what a skill did.
type SkillResult struct {
	Skill   Skill      `json:"skill"`
	Removed *maze.Wall `json:"removed,omitempty"`
	From    *maze.Pos  `json:"from,omitempty"`
	To      *maze.Pos  `json:"to,omitempty"`
	Path    []maze.Pos `json:"path,omitempty"`
	// EndsTurn is false for skills that only reveal information.
	EndsTurn bool `json:"endsTurn"`
}

type skillHandler struct {
	cooldown func(config.Cooldowns) int
	run      func(r *Room, p *Player) (SkillResult, error)
}

var skillHandlers = map[Skill]skillHandler{
	SkillWallDestroyer: {
		cooldown: func(c config.Cooldowns) int { return c.WallDestroyer },
		run:      destroyAdjacentWall,
	},
	SkillTeleport: {
		cooldown: func(c config.Cooldowns) int { return c.Teleport },
		run:      teleport,
	},
	SkillExitScanner: {
		cooldown: func(c config.Cooldowns) int { return c.ExitScanner },
		run:      scanExit,
	},
}

// destroyAdjacentWall removes the first wall touching the player, looking
// up, down, left, then right.
func destroyAdjacentWall(r *Room, p *Player) (SkillResult, error) {
	g, err := r.grid()
	if err != nil {
		return SkillResult{}, err
	}
	for _, d := range directions {
		w, ok := g.WallBetween(p.Pos, d.From(p.Pos))
		if !ok {
			continue
		}
		next, err := g.Without(w.Key())
		if err != nil {
			return SkillResult{}, err
		}
		r.Walls = next.Walls()
		return SkillResult{Skill: SkillWallDestroyer, Removed: &w, EndsTurn: true}, nil
	}
	return SkillResult{}, ErrNoSkillTarget
}

// teleport jumps two columns toward the middle of the board, or away from
// it when that is the only cell on the board. Walls are ignored.
func teleport(r *Room, p *Player) (SkillResult, error) {
	step := 2
	if p.Pos.Col > r.Size/2 {
		step = -2
	}
	from := p.Pos
	for _, s := range []int{step, -step} {
		to := maze.Pos{Row: from.Row, Col: from.Col + s}
		if to.Col < 0 || to.Col >= r.Size {
			continue
		}
		p.Pos = to
		return SkillResult{Skill: SkillTeleport, From: &from, To: &to, EndsTurn: true}, nil
	}
	return SkillResult{}, ErrNoSkillTarget
}

func scanExit(r *Room, p *Player) (SkillResult, error) {
	g, err := r.grid()
	if err != nil {
		return SkillResult{}, err
	}
	path, err := g.ShortestPath(p.Pos, p.Goal)
	if err != nil {
		return SkillResult{}, err
	}
	return SkillResult{Skill: SkillExitScanner, Path: path}, nil
}
