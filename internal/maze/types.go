package maze

import (
	"fmt"
	"math"
)

// Unreachable is the distance reported when no path to the goal exists.
// It is a finite value so that scores can be summed without overflow.
const Unreachable = math.MaxInt32

type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

type Orientation int

const (
	Horizontal Orientation = iota + 1
	Vertical
)

var orientationNames = map[Orientation]string{
	Horizontal: "horizontal",
	Vertical:   "vertical",
}

func (o Orientation) Valid() bool {
	_, ok := orientationNames[o]
	return ok
}

func (o Orientation) String() string {
	if s, ok := orientationNames[o]; ok {
		return s
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: orientation %d", ErrInvalidWall, int(o))
	}
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(b []byte) error {
	switch string(b) {
	case "horizontal", "h":
		*o = Horizontal
	case "vertical", "v":
		*o = Vertical
	default:
		return fmt.Errorf("%w: orientation %q", ErrInvalidWall, string(b))
	}
	return nil
}

type WallKind int

const (
	KindBlocking WallKind = iota + 1
	KindInvisible
	KindBouncing
	KindTeleporting
)

// nextKind is the mutation cycle of a wall.
var nextKind = map[WallKind]WallKind{
	KindBlocking:    KindInvisible,
	KindInvisible:   KindBouncing,
	KindBouncing:    KindTeleporting,
	KindTeleporting: KindBlocking,
}

// blocksTraversal says whether a kind stops movement across its edge.
// Special kinds have no traversal rules of their own yet, so they block
// exactly like plain walls.
var blocksTraversal = map[WallKind]bool{
	KindBlocking:    true,
	KindInvisible:   true,
	KindBouncing:    true,
	KindTeleporting: true,
}

var kindNames = map[WallKind]string{
	KindBlocking:    "blocking",
	KindInvisible:   "invisible",
	KindBouncing:    "bouncing",
	KindTeleporting: "teleporting",
}

func (k WallKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Next returns the kind a mutation turns k into.
func (k WallKind) Next() WallKind { return nextKind[k] }

func (k WallKind) Blocks() bool { return blocksTraversal[k] }

func (k WallKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k WallKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidWall, int(k))
	}
	return []byte(k.String()), nil
}

func (k *WallKind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	// legacy names of the plain wall
	switch string(b) {
	case "normal", "destructible":
		*k = KindBlocking
		return nil
	}
	return fmt.Errorf("%w: kind %q", ErrInvalidWall, string(b))
}

type WallKey struct {
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Orientation Orientation `json:"orientation"`
}

func (k WallKey) String() string {
	return fmt.Sprintf("%s@(%d,%d)", k.Orientation, k.Row, k.Col)
}

// less orders keys by row, column, then horizontal before vertical.
func (k WallKey) less(o WallKey) bool {
	if k.Row != o.Row {
		return k.Row < o.Row
	}
	if k.Col != o.Col {
		return k.Col < o.Col
	}
	return k.Orientation < o.Orientation
}

type Wall struct {
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Orientation Orientation `json:"orientation"`
	Kind        WallKind    `json:"kind"`
}

func (w Wall) Key() WallKey {
	return WallKey{Row: w.Row, Col: w.Col, Orientation: w.Orientation}
}

// Cells returns the two cells the wall separates.
func (w Wall) Cells() (Pos, Pos) {
	a := Pos{Row: w.Row, Col: w.Col}
	if w.Orientation == Horizontal {
		return a, Pos{Row: w.Row, Col: w.Col + 1}
	}
	return a, Pos{Row: w.Row + 1, Col: w.Col}
}

type GoalKind int

const (
	GoalRow GoalKind = iota
	GoalCell
)

var goalNames = map[GoalKind]string{
	GoalRow:  "row",
	GoalCell: "cell",
}

func (k GoalKind) String() string {
	if s, ok := goalNames[k]; ok {
		return s
	}
	return fmt.Sprintf("goal(%d)", int(k))
}

func (k GoalKind) MarshalText() ([]byte, error) {
	if _, ok := goalNames[k]; !ok {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidGoal, int(k))
	}
	return []byte(k.String()), nil
}

func (k *GoalKind) UnmarshalText(b []byte) error {
	for gk, name := range goalNames {
		if name == string(b) {
			*k = gk
			return nil
		}
	}
	return fmt.Errorf("%w: kind %q", ErrInvalidGoal, string(b))
}

// Goal is either a whole target row or a single exit cell.
type Goal struct {
	Kind GoalKind `json:"kind"`
	Row  int      `json:"row"`
	Col  int      `json:"col,omitempty"`
}

func RowGoal(row int) Goal { return Goal{Kind: GoalRow, Row: row} }

func CellGoal(p Pos) Goal { return Goal{Kind: GoalCell, Row: p.Row, Col: p.Col} }

func (g Goal) Reached(p Pos) bool {
	if g.Kind == GoalCell {
		return p.Row == g.Row && p.Col == g.Col
	}
	return p.Row == g.Row
}

// Estimate is the A* heuristic: never overestimates and is consistent
// because every step costs 1 and moves along one axis.
func (g Goal) Estimate(p Pos) int {
	h := abs(p.Row - g.Row)
	if g.Kind == GoalCell {
		h += abs(p.Col - g.Col)
	}
	return h
}

type Player struct {
	ID   string `json:"id"`
	Pos  Pos    `json:"pos"`
	Goal Goal   `json:"goal"`
}

// Snapshot is the point-in-time board handed to the warden for one turn.
type Snapshot struct {
	Size    int      `json:"size"`
	Walls   []Wall   `json:"walls"`
	Players []Player `json:"players"`
}

type ActionType int

const (
	ActionPass ActionType = iota
	ActionPlace
	ActionMutate
)

var actionNames = map[ActionType]string{
	ActionPass:   "pass",
	ActionPlace:  "place",
	ActionMutate: "mutate",
}

func (t ActionType) String() string {
	if s, ok := actionNames[t]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(t))
}

func (t ActionType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ActionType) UnmarshalText(b []byte) error {
	for at, name := range actionNames {
		if name == string(b) {
			*t = at
			return nil
		}
	}
	return fmt.Errorf("unknown action type %q", string(b))
}

// Action is what the warden wants done to the board.
type Action struct {
	Type    ActionType `json:"type"`
	Wall    *Wall      `json:"wall,omitempty"`
	Key     *WallKey   `json:"key,omitempty"`
	NewKind WallKind   `json:"newKind,omitempty"`
}

func Pass() Action { return Action{Type: ActionPass} }

func PlaceAction(w Wall) Action { return Action{Type: ActionPlace, Wall: &w} }

func MutateAction(k WallKey, kind WallKind) Action {
	return Action{Type: ActionMutate, Key: &k, NewKind: kind}
}

func (a Action) String() string {
	switch a.Type {
	case ActionPlace:
		return fmt.Sprintf("place %s %s", a.Wall.Key(), a.Wall.Kind)
	case ActionMutate:
		return fmt.Sprintf("mutate %s -> %s", a.Key, a.NewKind)
	}
	return "pass"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
