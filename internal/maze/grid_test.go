package maze

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hw(r, c int) Wall { return Wall{Row: r, Col: c, Orientation: Horizontal, Kind: KindBlocking} }
func vw(r, c int) Wall { return Wall{Row: r, Col: c, Orientation: Vertical, Kind: KindBlocking} }

func mustGrid(t *testing.T, size int, walls ...Wall) *Grid {
	t.Helper()
	g, err := NewGrid(size, walls)
	require.NoError(t, err)
	return g
}

func TestInBounds(t *testing.T) {
	g := mustGrid(t, 5)
	assert.True(t, g.InBounds(Pos{0, 0}))
	assert.True(t, g.InBounds(Pos{4, 4}))
	assert.False(t, g.InBounds(Pos{5, 0}))
	assert.False(t, g.InBounds(Pos{0, -1}))
}

func TestWallBetweenFollowsOrientation(t *testing.T) {
	g := mustGrid(t, 5, hw(1, 1), vw(2, 3))

	w, ok := g.WallBetween(Pos{1, 2}, Pos{1, 1})
	require.True(t, ok)
	assert.Equal(t, hw(1, 1), w)

	w, ok = g.WallBetween(Pos{2, 3}, Pos{3, 3})
	require.True(t, ok)
	assert.Equal(t, vw(2, 3), w)

	_, ok = g.WallBetween(Pos{1, 1}, Pos{2, 1})
	assert.False(t, ok, "horizontal wall must not block the column step")

	_, ok = g.WallBetween(Pos{1, 1}, Pos{2, 2})
	assert.False(t, ok, "diagonal cells are not adjacent")

	_, ok = g.WallBetween(Pos{1, 1}, Pos{1, 1})
	assert.False(t, ok)
}

func TestIsStepBlockedForEveryKind(t *testing.T) {
	for _, kind := range []WallKind{KindBlocking, KindInvisible, KindBouncing, KindTeleporting} {
		w := hw(0, 0)
		w.Kind = kind
		g := mustGrid(t, 3, w)
		assert.True(t, g.IsStepBlocked(Pos{0, 0}, Pos{0, 1}), kind.String())
		assert.True(t, g.IsStepBlocked(Pos{0, 1}, Pos{0, 0}), kind.String())
		assert.False(t, g.IsStepBlocked(Pos{0, 0}, Pos{1, 0}), kind.String())
	}
}

func TestKindCycle(t *testing.T) {
	assert.Equal(t, KindInvisible, KindBlocking.Next())
	assert.Equal(t, KindBouncing, KindInvisible.Next())
	assert.Equal(t, KindTeleporting, KindBouncing.Next())
	assert.Equal(t, KindBlocking, KindTeleporting.Next())
}

func TestNewGridRejectsMalformedLedger(t *testing.T) {
	_, err := NewGrid(1, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewGrid(MaxSize+1, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewGrid(MaxSize, nil)
	assert.NoError(t, err)

	_, err = NewGrid(5, []Wall{hw(0, 4)})
	assert.ErrorIs(t, err, ErrInvalidWall)

	_, err = NewGrid(5, []Wall{vw(4, 0)})
	assert.ErrorIs(t, err, ErrInvalidWall)

	_, err = NewGrid(5, []Wall{{Row: 0, Col: 0, Orientation: Horizontal}})
	assert.ErrorIs(t, err, ErrInvalidWall)

	dup := hw(2, 2)
	dup.Kind = KindBouncing
	_, err = NewGrid(5, []Wall{hw(2, 2), dup})
	assert.ErrorIs(t, err, ErrDuplicateWall)

	// same cell, other orientation is a different key
	_, err = NewGrid(5, []Wall{hw(2, 2), vw(2, 2)})
	assert.NoError(t, err)
}

func TestDerivedGridsLeaveSourceUntouched(t *testing.T) {
	g := mustGrid(t, 5, vw(3, 3))

	placed, err := g.With(hw(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, []Wall{hw(0, 0), vw(3, 3)}, placed.Walls())

	_, err = placed.With(hw(0, 0))
	assert.ErrorIs(t, err, ErrDuplicateWall)

	mutated, err := g.WithKind(vw(3, 3).Key(), KindTeleporting)
	require.NoError(t, err)
	w, _ := mutated.Wall(vw(3, 3).Key())
	assert.Equal(t, KindTeleporting, w.Kind)
	w, _ = g.Wall(vw(3, 3).Key())
	assert.Equal(t, KindBlocking, w.Kind)

	_, err = g.WithKind(hw(1, 1).Key(), KindInvisible)
	assert.ErrorIs(t, err, ErrUnknownWall)

	removed, err := placed.Without(vw(3, 3).Key())
	require.NoError(t, err)
	assert.Equal(t, []Wall{hw(0, 0)}, removed.Walls())
	assert.Equal(t, 2, placed.Len())
}

func TestWallsAreListedInKeyOrder(t *testing.T) {
	g := mustGrid(t, 5, vw(2, 0), hw(2, 0), hw(0, 3), vw(0, 1))
	assert.Equal(t, []Wall{vw(0, 1), hw(0, 3), hw(2, 0), vw(2, 0)}, g.Walls())
}

func TestWallJSONUsesNames(t *testing.T) {
	b, err := json.Marshal(Wall{Row: 1, Col: 2, Orientation: Vertical, Kind: KindBouncing})
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":1,"col":2,"orientation":"vertical","kind":"bouncing"}`, string(b))

	var w Wall
	require.NoError(t, json.Unmarshal([]byte(`{"row":0,"col":0,"orientation":"h","kind":"normal"}`), &w))
	assert.Equal(t, hw(0, 0), w)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"lava"}`), &w))
}

func TestGoalJSONUsesNames(t *testing.T) {
	b, err := json.Marshal(CellGoal(Pos{Row: 4, Col: 2}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"cell","row":4,"col":2}`, string(b))

	b, err = json.Marshal(RowGoal(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"row","row":0}`, string(b))

	var g Goal
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"cell","row":1,"col":3}`), &g))
	assert.Equal(t, CellGoal(Pos{Row: 1, Col: 3}), g)

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"kind":"corner"}`), &g), ErrInvalidGoal)
	_, err = json.Marshal(Goal{Kind: GoalKind(7)})
	assert.Error(t, err)
}

func TestSnapshotValidate(t *testing.T) {
	ok := Snapshot{Size: 5, Players: []Player{{ID: "a", Pos: Pos{0, 0}, Goal: RowGoal(4)}}}
	assert.NoError(t, ok.Validate())

	off := ok
	off.Players = []Player{{ID: "a", Pos: Pos{5, 0}, Goal: RowGoal(4)}}
	assert.ErrorIs(t, off.Validate(), ErrOutOfBounds)

	goal := ok
	goal.Players = []Player{{ID: "a", Pos: Pos{0, 0}, Goal: RowGoal(9)}}
	assert.ErrorIs(t, goal.Validate(), ErrInvalidGoal)

	huge := Snapshot{Size: 1 << 31}
	assert.ErrorIs(t, huge.Validate(), ErrInvalidSize)

	twins := ok
	twins.Players = []Player{ok.Players[0], ok.Players[0]}
	assert.ErrorIs(t, twins.Validate(), ErrInvalidPlayer)
}
