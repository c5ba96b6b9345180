package maze

// Driver runs one warden turn over a snapshot. It keeps no state between
// calls, so one Driver can serve every room.
type Driver struct {
	planner *Planner
}

func NewDriver(workers int) *Driver {
	return &Driver{planner: NewPlanner(workers)}
}

// Decide validates s and returns the full planning outcome.
func (d *Driver) Decide(s Snapshot, opts ...PlanOption) (Decision, error) {
	g, err := s.Grid()
	if err != nil {
		return Decision{}, err
	}
	return d.planner.Plan(g, s.Players, opts...)
}

// PlanTurn returns the action the warden takes on s.
func (d *Driver) PlanTurn(s Snapshot) (Action, error) {
	dec, err := d.Decide(s)
	if err != nil {
		return Action{}, err
	}
	return dec.Action, nil
}

// PlanTurn plans with a sequential driver.
func PlanTurn(s Snapshot) (Action, error) {
	return NewDriver(1).PlanTurn(s)
}

// Winner returns the first player standing on its goal.
func Winner(players []Player) (Player, bool) {
	for _, p := range players {
		if p.Goal.Reached(p.Pos) {
			return p, true
		}
	}
	return Player{}, false
}
