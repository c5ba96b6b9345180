package room

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maze-warden/internal/config"
	"maze-warden/internal/logging"
	"maze-warden/internal/maze"
)

type mapStore struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func (s *mapStore) GetRoom(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[code]
	return r, ok
}

func (s *mapStore) SaveRoom(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.Code] = r
}

func (s *mapStore) DeleteRoom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

func (s *mapStore) ListRooms() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Room
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out
}

type recorder struct {
	mu      sync.Mutex
	actions []string
}

func (r *recorder) Broadcast(_ string, action string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
}

func newTestManager(t *testing.T) (*Manager, *mapStore, *recorder) {
	t.Helper()
	cfg := config.Default()
	cfg.BoardSize = 5
	cfg.Warden.Workers = 1
	st := &mapStore{rooms: map[string]*Room{}}
	rec := &recorder{}
	return NewManager(st, cfg, rec, logging.Discard()), st, rec
}

func hwall(r, c int) maze.Wall {
	return maze.Wall{Row: r, Col: c, Orientation: maze.Horizontal, Kind: maze.KindBlocking}
}

func vwall(r, c int) maze.Wall {
	return maze.Wall{Row: r, Col: c, Orientation: maze.Vertical, Kind: maze.KindBlocking}
}

func TestCreateAndJoin(t *testing.T) {
	m, _, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)
	assert.Len(t, r.Code, 6)
	assert.Equal(t, 5, r.Size)
	assert.Equal(t, ModeDuel, r.Mode)
	require.Len(t, r.Players, 1)
	assert.Equal(t, maze.Pos{Row: 0, Col: 2}, r.Players[0].Pos)
	assert.Equal(t, maze.RowGoal(4), r.Players[0].Goal)
	assert.Equal(t, CharacterWarrior, r.Players[0].Character)

	r, bob, err := m.Join(r.Code, "bob", CharacterScout)
	require.NoError(t, err)
	require.Len(t, r.Players, 2)
	assert.Equal(t, maze.Pos{Row: 4, Col: 2}, bob.Pos)
	assert.Equal(t, maze.RowGoal(0), bob.Goal)
	assert.Equal(t, CharacterScout, bob.Character)

	_, _, err = m.Join(r.Code, "carol", 0)
	assert.ErrorIs(t, err, ErrRoomFull)

	_, _, err = m.Join("NOPE", "dave", 0)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateRejectsBadOptions(t *testing.T) {
	m, _, _ := newTestManager(t)
	_, err := m.CreateRoom("alice", Options{Mode: "chess"})
	assert.ErrorIs(t, err, ErrBadMode)

	_, err = m.CreateRoom("alice", Options{Size: 2})
	assert.ErrorIs(t, err, maze.ErrInvalidSize)

	_, err = m.CreateRoom("alice", Options{Size: maze.MaxSize + 1})
	assert.ErrorIs(t, err, maze.ErrInvalidSize)

	_, err = m.CreateRoom("alice", Options{Character: Character(9)})
	assert.ErrorIs(t, err, ErrBadCharacter)
}

func TestJoinAfterFirstTurn(t *testing.T) {
	m, _, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)
	_, err = m.Pass(r.Code, r.Players[0].ID)
	require.NoError(t, err)

	_, _, err = m.Join(r.Code, "bob", CharacterMage)
	assert.ErrorIs(t, err, ErrRoomStarted)

	got, _ := m.Get(r.Code)
	assert.Len(t, got.Players, 1)
}

func TestRaceSeatsShareOneExit(t *testing.T) {
	m, _, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{Mode: ModeRace})
	require.NoError(t, err)
	_, bob, err := m.Join(r.Code, "bob", CharacterScout)
	require.NoError(t, err)

	exit := maze.CellGoal(maze.Pos{Row: 4, Col: 2})
	assert.Equal(t, maze.Pos{Row: 0, Col: 0}, r.Players[0].Pos)
	assert.Equal(t, exit, r.Players[0].Goal)
	assert.Equal(t, maze.Pos{Row: 0, Col: 4}, bob.Pos)
	assert.Equal(t, exit, bob.Goal)
}

func TestMoveHandsTurnToWarden(t *testing.T) {
	m, _, rec := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)
	r, bob, err := m.Join(r.Code, "bob", CharacterScout)
	require.NoError(t, err)
	alice := r.Players[0]

	_, err = m.Move(r.Code, bob.ID, Up)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	res, err := m.Move(r.Code, alice.ID, Down)
	require.NoError(t, err)
	assert.Equal(t, maze.Pos{Row: 1, Col: 2}, res.Room.Players[0].Pos)
	assert.Equal(t, 1, res.Room.TurnCount)
	assert.Equal(t, 1, res.Room.TurnIdx)

	// the first wall that stretches both routes sits under alice
	require.NotNil(t, res.Warden)
	assert.Equal(t, maze.PlaceAction(vwall(1, 2)), res.Warden.Action)
	assert.EqualValues(t, 2, res.Warden.Score)
	assert.Equal(t, []maze.Wall{vwall(1, 2)}, res.Room.Walls)
	assert.Equal(t, 1, res.Room.WallsUsed)
	assert.Contains(t, rec.actions, "move-applied")

	_, err = m.Move(r.Code, bob.ID, "sideways")
	assert.ErrorIs(t, err, ErrBadDirection)
}

func TestMoveRejectsWallsAndEdges(t *testing.T) {
	m, st, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)
	alice := r.Players[0].ID
	st.rooms[r.Code].Walls = []maze.Wall{vwall(0, 2)}

	_, err = m.Move(r.Code, alice, Down)
	assert.ErrorIs(t, err, ErrBlocked)

	_, err = m.Move(r.Code, alice, Up)
	assert.ErrorIs(t, err, ErrOffBoard)

	got, _ := m.Get(r.Code)
	assert.Zero(t, got.TurnCount)
	assert.Equal(t, maze.Pos{Row: 0, Col: 2}, got.Players[0].Pos)
}

func TestReachingGoalEndsGame(t *testing.T) {
	m, st, rec := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)
	alice := r.Players[0].ID
	st.rooms[r.Code].Players[0].Pos = maze.Pos{Row: 3, Col: 2}

	res, err := m.Move(r.Code, alice, Down)
	require.NoError(t, err)
	require.NotNil(t, res.Room.WinnerID)
	assert.Equal(t, alice, *res.Room.WinnerID)
	assert.Nil(t, res.Warden)
	assert.Empty(t, res.Room.Walls)
	assert.Contains(t, rec.actions, "game-over")

	_, err = m.Move(r.Code, alice, Up)
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = m.WardenTurn(r.Code)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestWallBudgetLimitsWardenToMutations(t *testing.T) {
	m, _, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{WallBudget: 1})
	require.NoError(t, err)
	alice := r.Players[0].ID

	res, err := m.Pass(r.Code, alice)
	require.NoError(t, err)
	require.NotNil(t, res.Warden)
	assert.Equal(t, maze.ActionPlace, res.Warden.Action.Type)
	assert.Equal(t, 0, res.Room.WallsLeft())
	placed := *res.Warden.Action.Wall

	res, err = m.Pass(r.Code, alice)
	require.NoError(t, err)
	require.NotNil(t, res.Warden)
	assert.Equal(t, maze.MutateAction(placed.Key(), maze.KindInvisible), res.Warden.Action)
	require.Len(t, res.Room.Walls, 1)
	assert.Equal(t, maze.KindInvisible, res.Room.Walls[0].Kind)
	assert.Equal(t, 1, res.Room.WallsUsed)
}

func TestWallDestroyer(t *testing.T) {
	m, st, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)
	alice := r.Players[0].ID

	_, err = m.UseSkill(r.Code, alice, SkillWallDestroyer)
	assert.ErrorIs(t, err, ErrNoSkillTarget)

	st.rooms[r.Code].Walls = []maze.Wall{vwall(0, 2), hwall(3, 3)}
	res, err := m.UseSkill(r.Code, alice, SkillWallDestroyer)
	require.NoError(t, err)
	require.NotNil(t, res.Skill)
	assert.Equal(t, vwall(0, 2), *res.Skill.Removed)
	assert.Contains(t, res.Room.Walls, hwall(3, 3))
	// the cleared edge is again the warden's best placement
	require.NotNil(t, res.Warden, "destroying a wall ends the turn")
	assert.Equal(t, maze.PlaceAction(vwall(0, 2)), res.Warden.Action)
	assert.Equal(t, []maze.Wall{vwall(0, 2), hwall(3, 3)}, res.Room.Walls)
	assert.Equal(t, 2, res.Room.Players[0].Cooldown(SkillWallDestroyer))

	_, err = m.UseSkill(r.Code, alice, SkillWallDestroyer)
	assert.ErrorIs(t, err, ErrSkillCooldown)
}

func TestScoutScansExit(t *testing.T) {
	m, _, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{Character: CharacterScout})
	require.NoError(t, err)
	alice := r.Players[0].ID

	res, err := m.UseSkill(r.Code, alice, SkillExitScanner)
	require.NoError(t, err)
	assert.False(t, res.Skill.EndsTurn)
	assert.Nil(t, res.Warden)
	assert.Len(t, res.Skill.Path, 5)
	assert.Zero(t, res.Room.TurnCount)
	assert.Equal(t, 7, res.Room.Players[0].Cooldown(SkillExitScanner))

	_, err = m.UseSkill(r.Code, alice, Skill(42))
	assert.ErrorIs(t, err, ErrUnknownSkill)
}

func TestMageTeleports(t *testing.T) {
	m, _, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{Character: CharacterMage})
	require.NoError(t, err)
	alice := r.Players[0].ID

	res, err := m.UseSkill(r.Code, alice, SkillTeleport)
	require.NoError(t, err)
	assert.Equal(t, maze.Pos{Row: 0, Col: 4}, *res.Skill.To)
	assert.Equal(t, maze.Pos{Row: 0, Col: 4}, res.Room.Players[0].Pos)
	assert.Equal(t, 1, res.Room.TurnCount)
}

func TestSkillsFollowCharacter(t *testing.T) {
	m, _, _ := newTestManager(t)
	for ch, own := range map[Character]Skill{
		CharacterWarrior: SkillWallDestroyer,
		CharacterMage:    SkillTeleport,
		CharacterScout:   SkillExitScanner,
	} {
		assert.Equal(t, own, ch.Skill())
		r, err := m.CreateRoom("alice", Options{Character: ch})
		require.NoError(t, err)
		for _, s := range []Skill{SkillWallDestroyer, SkillTeleport, SkillExitScanner} {
			if s == own {
				continue
			}
			_, err := m.UseSkill(r.Code, r.Players[0].ID, s)
			assert.ErrorIs(t, err, ErrSkillNotOwned, "%s using %s", ch, s)
		}
	}
}

func TestFailedUpdateLeavesStoredRoomUntouched(t *testing.T) {
	m, st, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)

	_, err = m.update(r.Code, func(rx *Room) error {
		rx.Players[0].Pos = maze.Pos{Row: 3, Col: 3}
		rx.Players[0].ReadyAt[SkillTeleport] = 9
		rx.Walls = append(rx.Walls, hwall(1, 1))
		rx.TurnCount++
		return errors.New("warden failed")
	})
	require.Error(t, err)

	stored := st.rooms[r.Code]
	assert.Equal(t, maze.Pos{Row: 0, Col: 2}, stored.Players[0].Pos)
	assert.Empty(t, stored.Players[0].ReadyAt)
	assert.Empty(t, stored.Walls)
	assert.Zero(t, stored.TurnCount)
}

func TestLocksExistOnlyForStoredRooms(t *testing.T) {
	m, _, _ := newTestManager(t)
	_, ok := m.Get("NOPE")
	assert.False(t, ok)
	_, err := m.Pass("NOPE", "x")
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.ErrorIs(t, m.Close("NOPE"), ErrRoomNotFound)
	assert.Empty(t, m.locks)

	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)
	_, ok = m.Get(r.Code)
	require.True(t, ok)
	assert.Len(t, m.locks, 1)

	require.NoError(t, m.Close(r.Code))
	assert.Empty(t, m.locks)
}

func TestPathAndRank(t *testing.T) {
	m, st, _ := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)
	r, bob, err := m.Join(r.Code, "bob", CharacterScout)
	require.NoError(t, err)
	alice := r.Players[0].ID
	st.rooms[r.Code].Players[1].Pos = maze.Pos{Row: 1, Col: 0}

	path, d, err := m.Path(r.Code, alice)
	require.NoError(t, err)
	assert.Equal(t, 4, d)
	assert.Len(t, path, 5)

	_, _, err = m.Path(r.Code, "ghost")
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	got, _ := m.Get(r.Code)
	rank := m.Rank(got)
	require.Len(t, rank, 2)
	assert.Equal(t, bob.ID, rank[0].PlayerID)
	assert.Equal(t, 1, rank[0].Distance)
}

func TestWardenTurnAndClose(t *testing.T) {
	m, _, rec := newTestManager(t)
	r, err := m.CreateRoom("alice", Options{})
	require.NoError(t, err)

	dec, err := m.WardenTurn(r.Code)
	require.NoError(t, err)
	assert.Equal(t, maze.ActionPlace, dec.Action.Type)

	got, _ := m.Get(r.Code)
	assert.Len(t, got.Walls, 1)
	assert.Zero(t, got.TurnCount)
	assert.Len(t, m.List(), 1)

	require.NoError(t, m.Close(r.Code))
	_, ok := m.Get(r.Code)
	assert.False(t, ok)
	assert.ErrorIs(t, m.Close(r.Code), ErrRoomNotFound)
	assert.Contains(t, rec.actions, "warden-played")
}
