package maze

// Candidate is one warden move the planner may choose.
type Candidate struct {
	Action Action `json:"action"`
}

// GenerateCandidates lists every legal warden action on g: a plain wall on
// each free key (row by row, horizontal before vertical), then a kind
// mutation of each existing wall in key order. It does not check whether
// the maze stays solvable.
func GenerateCandidates(g *Grid) []Candidate {
	return generate(g, true)
}

func generate(g *Grid, placements bool) []Candidate {
	var out []Candidate
	if placements {
		out = make([]Candidate, 0, 2*g.size*g.size)
		for r := 0; r < g.size; r++ {
			for c := 0; c < g.size; c++ {
				for _, o := range [...]Orientation{Horizontal, Vertical} {
					k := WallKey{Row: r, Col: c, Orientation: o}
					if !g.Fits(k) {
						continue
					}
					if _, taken := g.Wall(k); taken {
						continue
					}
					out = append(out, Candidate{Action: PlaceAction(Wall{Row: r, Col: c, Orientation: o, Kind: KindBlocking})})
				}
			}
		}
	}
	for _, w := range g.Walls() {
		out = append(out, Candidate{Action: MutateAction(w.Key(), w.Kind.Next())})
	}
	return out
}
