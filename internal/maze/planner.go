package maze

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Decision is the outcome of one planning sweep.
type Decision struct {
	Action Action `json:"action"`
	// Score is the summed growth of every player's distance under Action.
	Score      int64 `json:"score"`
	Baseline   []int `json:"baseline"`
	After      []int `json:"after"`
	Candidates int   `json:"candidates"`
}

type planOptions struct {
	placements bool
}

type PlanOption func(*planOptions)

// WithoutPlacements limits the sweep to kind mutations of existing walls.
func WithoutPlacements() PlanOption {
	return func(o *planOptions) { o.placements = false }
}

// Planner scores every candidate against every player and keeps the best.
type Planner struct {
	workers int
}

// NewPlanner returns a planner evaluating up to workers candidates at
// once. workers <= 1 evaluates them one after another.
func NewPlanner(workers int) *Planner {
	if workers < 1 {
		workers = 1
	}
	return &Planner{workers: workers}
}

type evaluation struct {
	score int64
	after []int
}

// Plan picks the candidate with the strictly greatest score; the earliest
// candidate wins a tie. It acts whenever a candidate exists, even when the
// best score is not positive, and passes only on an empty candidate set.
func (p *Planner) Plan(g *Grid, players []Player, opts ...PlanOption) (Decision, error) {
	o := planOptions{placements: true}
	for _, opt := range opts {
		opt(&o)
	}

	baseline, err := g.Distances(players)
	if err != nil {
		return Decision{}, err
	}
	cands := generate(g, o.placements)
	dec := Decision{Action: Pass(), Baseline: baseline, After: baseline, Candidates: len(cands)}
	if len(cands) == 0 {
		return dec, nil
	}

	base := sum(baseline)
	evals := make([]evaluation, len(cands))
	eval := func(i int) error {
		sim, err := g.Apply(cands[i].Action)
		if err != nil {
			return fmt.Errorf("candidate %s: %w", cands[i].Action, err)
		}
		after, err := sim.Distances(players)
		if err != nil {
			return err
		}
		evals[i] = evaluation{score: sum(after) - base, after: after}
		return nil
	}

	if p.workers == 1 {
		for i := range cands {
			if err := eval(i); err != nil {
				return Decision{}, err
			}
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(p.workers)
		for i := range cands {
			i := i
			eg.Go(func() error { return eval(i) })
		}
		if err := eg.Wait(); err != nil {
			return Decision{}, err
		}
	}

	best := 0
	for i := 1; i < len(evals); i++ {
		if evals[i].score > evals[best].score {
			best = i
		}
	}
	dec.Action = cands[best].Action
	dec.Score = evals[best].score
	dec.After = evals[best].after
	return dec, nil
}

func sum(ds []int) int64 {
	var s int64
	for _, d := range ds {
		s += int64(d)
	}
	return s
}
