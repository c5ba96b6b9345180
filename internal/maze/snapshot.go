package maze

import "fmt"

// Validate rejects snapshots a host should never produce.
func (s Snapshot) Validate() error {
	_, err := s.Grid()
	return err
}

// Grid builds the grid view of the snapshot and checks every player.
func (s Snapshot) Grid() (*Grid, error) {
	g, err := NewGrid(s.Size, s.Walls)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(s.Players))
	for _, p := range s.Players {
		if p.ID == "" || seen[p.ID] {
			return nil, fmt.Errorf("%w: id %q", ErrInvalidPlayer, p.ID)
		}
		seen[p.ID] = true
		if !g.InBounds(p.Pos) {
			return nil, fmt.Errorf("%w: player %s at %s", ErrOutOfBounds, p.ID, p.Pos)
		}
		if err := g.checkGoal(p.Goal); err != nil {
			return nil, fmt.Errorf("player %s: %w", p.ID, err)
		}
	}
	return g, nil
}

func (g *Grid) checkGoal(goal Goal) error {
	switch goal.Kind {
	case GoalRow:
		if goal.Row < 0 || goal.Row >= g.size {
			return fmt.Errorf("%w: row %d", ErrInvalidGoal, goal.Row)
		}
	case GoalCell:
		if !g.InBounds(Pos{Row: goal.Row, Col: goal.Col}) {
			return fmt.Errorf("%w: cell (%d,%d)", ErrInvalidGoal, goal.Row, goal.Col)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidGoal, int(goal.Kind))
	}
	return nil
}
