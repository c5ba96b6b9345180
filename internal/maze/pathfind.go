package maze

import (
	"container/heap"
	"fmt"
)

// steps is the expansion order: up, down, left, right.
var steps = [4]Pos{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

type openNode struct {
	idx int
	g   int
	f   int
	seq int
}

// openSet is a min-heap on f; equal f pops in insertion order.
type openSet []openNode

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x any) { *o = append(*o, x.(openNode)) }
func (o *openSet) Pop() any {
	old := *o
	n := old[len(old)-1]
	*o = old[:len(old)-1]
	return n
}

// ShortestDistance returns the number of steps from start to the nearest
// goal cell, or Unreachable. An error means the request itself is bad.
func (g *Grid) ShortestDistance(start Pos, goal Goal) (int, error) {
	d, _, err := g.search(start, goal, false)
	return d, err
}

// ShortestPath returns the cells of one shortest route, start first and a
// goal cell last. It is nil when the goal is unreachable.
func (g *Grid) ShortestPath(start Pos, goal Goal) ([]Pos, error) {
	_, path, err := g.search(start, goal, true)
	return path, err
}

func (g *Grid) search(start Pos, goal Goal, withPath bool) (int, []Pos, error) {
	if !g.InBounds(start) {
		return 0, nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if err := g.checkGoal(goal); err != nil {
		return 0, nil, err
	}

	n := g.size * g.size
	gScore := make([]int, n)
	closed := make([]bool, n)
	for i := range gScore {
		gScore[i] = Unreachable
	}
	var parent []int
	if withPath {
		parent = make([]int, n)
		for i := range parent {
			parent[i] = -1
		}
	}

	startIdx := start.Row*g.size + start.Col
	gScore[startIdx] = 0
	open := &openSet{{idx: startIdx, g: 0, f: goal.Estimate(start)}}
	seq := 1

	for open.Len() > 0 {
		cur := heap.Pop(open).(openNode)
		if closed[cur.idx] || cur.g != gScore[cur.idx] {
			continue
		}
		p := Pos{Row: cur.idx / g.size, Col: cur.idx % g.size}
		if goal.Reached(p) {
			if !withPath {
				return cur.g, nil, nil
			}
			return cur.g, g.walkBack(parent, cur.idx), nil
		}
		closed[cur.idx] = true

		for _, s := range steps {
			next := Pos{Row: p.Row + s.Row, Col: p.Col + s.Col}
			if !g.InBounds(next) || g.blockedFast(p, next) {
				continue
			}
			ni := next.Row*g.size + next.Col
			if closed[ni] {
				continue
			}
			tentative := cur.g + 1
			if tentative >= gScore[ni] {
				continue
			}
			gScore[ni] = tentative
			if withPath {
				parent[ni] = cur.idx
			}
			heap.Push(open, openNode{idx: ni, g: tentative, f: tentative + goal.Estimate(next), seq: seq})
			seq++
		}
	}
	return Unreachable, nil, nil
}

func (g *Grid) walkBack(parent []int, idx int) []Pos {
	var path []Pos
	for i := idx; i >= 0; i = parent[i] {
		path = append(path, Pos{Row: i / g.size, Col: i % g.size})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Distances computes the shortest distance of every player, in order.
func (g *Grid) Distances(players []Player) ([]int, error) {
	out := make([]int, len(players))
	for i, p := range players {
		d, err := g.ShortestDistance(p.Pos, p.Goal)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.ID, err)
		}
		out[i] = d
	}
	return out, nil
}
