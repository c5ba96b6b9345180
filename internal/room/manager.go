package room

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"maze-warden/internal/config"
	"maze-warden/internal/maze"
)

type Manager struct {
	store  Store
	cfg    config.Config
	hub    Broadcaster
	driver *maze.Driver
	log    *log.Entry

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(s Store, cfg config.Config, hub Broadcaster, logger *log.Entry) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{
		store:  s,
		cfg:    cfg,
		hub:    hub,
		driver: maze.NewDriver(cfg.Warden.Workers),
		log:    logger.WithField("component", "room"),
		locks:  map[string]*sync.Mutex{},
	}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

func (m *Manager) Config() config.Config { return m.cfg }

type Options struct {
	Size int
	Mode Mode
	// WallBudget overrides the configured budget when positive.
	WallBudget int
	// Character of the creator, warrior when unset.
	Character Character
}

// CreateRoom opens a room seating its creator as the first player.
func (m *Manager) CreateRoom(creatorName string, opts Options) (Room, error) {
	if creatorName == "" {
		creatorName = "Player"
	}
	size := opts.Size
	if size == 0 {
		size = m.cfg.BoardSize
	}
	if size < 3 || size > maze.MaxSize {
		return Room{}, fmt.Errorf("%w: %d", maze.ErrInvalidSize, size)
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeDuel
	}
	if mode != ModeDuel && mode != ModeRace {
		return Room{}, fmt.Errorf("%w: %q", ErrBadMode, mode)
	}
	budget := m.cfg.Warden.WallBudget
	if opts.WallBudget > 0 {
		budget = opts.WallBudget
	}
	ch, err := pickCharacter(opts.Character)
	if err != nil {
		return Room{}, err
	}

	r := newRoom(uuid.NewString(), randCode(6), size, mode, budget)
	r.Players = append(r.Players, m.newPlayer(r, creatorName, ch))
	m.store.SaveRoom(r)

	m.log.WithFields(log.Fields{"room": r.Code, "size": size, "mode": mode}).Info("room created")
	return r.clone(), nil
}

func pickCharacter(ch Character) (Character, error) {
	if ch == 0 {
		return CharacterWarrior, nil
	}
	if !ch.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrBadCharacter, int(ch))
	}
	return ch, nil
}

func (m *Manager) newPlayer(r *Room, name string, ch Character) Player {
	i := len(r.Players)
	start, goal := r.seat(i)
	return Player{
		ID:        uuid.NewString(),
		Name:      name,
		Index:     i,
		Character: ch,
		Pos:       start,
		Goal:      goal,
		ReadyAt:   map[Skill]int{},
	}
}

// Join seats a second player before the first turn is played.
func (m *Manager) Join(code, name string, ch Character) (Room, Player, error) {
	ch, err := pickCharacter(ch)
	if err != nil {
		return Room{}, Player{}, err
	}
	var joined Player
	out, err := m.update(code, func(r *Room) error {
		if len(r.Players) >= MaxPlayers {
			return ErrRoomFull
		}
		if r.TurnCount > 0 {
			return ErrRoomStarted
		}
		if name == "" {
			name = fmt.Sprintf("Player %d", len(r.Players)+1)
		}
		joined = m.newPlayer(r, name, ch)
		r.Players = append(r.Players, joined)
		return nil
	})
	if err != nil {
		return Room{}, Player{}, err
	}
	m.hub.Broadcast(code, "player-joined", map[string]interface{}{"player": joined, "room": out})
	return out, joined, nil
}

func (m *Manager) Get(code string) (Room, bool) {
	lock, ok := m.lock(code)
	if !ok {
		return Room{}, false
	}
	lock.Lock()
	defer lock.Unlock()
	r, ok := m.store.GetRoom(code)
	if !ok {
		return Room{}, false
	}
	return r.clone(), true
}

func (m *Manager) List() []Room {
	rooms := m.store.ListRooms()
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if rx, ok := m.Get(r.Code); ok {
			out = append(out, rx)
		}
	}
	return out
}

// Close drops a room and tells its listeners.
func (m *Manager) Close(code string) error {
	lock, ok := m.lock(code)
	if !ok {
		return ErrRoomNotFound
	}
	lock.Lock()
	defer lock.Unlock()
	if _, ok := m.store.GetRoom(code); !ok {
		return ErrRoomNotFound
	}
	m.store.DeleteRoom(code)
	m.mu.Lock()
	delete(m.locks, code)
	m.mu.Unlock()
	m.hub.Broadcast(code, "room-closed", map[string]interface{}{"code": code})
	m.log.WithField("room", code).Info("room closed")
	return nil
}

// lock returns the mutex of a stored room. Unknown codes get none.
func (m *Manager) lock(code string) (*sync.Mutex, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.locks[code]; ok {
		return l, true
	}
	if _, ok := m.store.GetRoom(code); !ok {
		return nil, false
	}
	l := &sync.Mutex{}
	m.locks[code] = l
	return l, true
}

// update runs fn on a copy of the stored room under its lock. The copy
// replaces the stored room only when fn succeeds.
func (m *Manager) update(code string, fn func(r *Room) error) (Room, error) {
	lock, ok := m.lock(code)
	if !ok {
		return Room{}, ErrRoomNotFound
	}
	lock.Lock()
	defer lock.Unlock()

	r, ok := m.store.GetRoom(code)
	if !ok {
		return Room{}, ErrRoomNotFound
	}
	next := r.clone()
	if err := fn(&next); err != nil {
		return Room{}, err
	}
	m.store.SaveRoom(&next)
	return next.clone(), nil
}

// TurnResult is the room after a player's turn and the warden's reply.
type TurnResult struct {
	Room   Room           `json:"room"`
	Warden *maze.Decision `json:"warden,omitempty"`
	Skill  *SkillResult   `json:"skill,omitempty"`
}

func (m *Manager) takeTurn(r *Room, playerID string) (*Player, error) {
	if r.Finished() {
		return nil, ErrGameOver
	}
	cp := r.current()
	if cp == nil || cp.ID != playerID {
		return nil, ErrNotYourTurn
	}
	return cp, nil
}

// Move walks the current player one cell. Reaching the goal ends the game,
// otherwise the turn passes and the warden plays.
func (m *Manager) Move(code, playerID string, dir Direction) (TurnResult, error) {
	if !dir.Valid() {
		return TurnResult{}, fmt.Errorf("%w: %q", ErrBadDirection, dir)
	}
	var res TurnResult
	out, err := m.update(code, func(r *Room) error {
		cp, err := m.takeTurn(r, playerID)
		if err != nil {
			return err
		}
		g, err := r.grid()
		if err != nil {
			return err
		}
		next := dir.From(cp.Pos)
		if !g.InBounds(next) {
			return ErrOffBoard
		}
		if g.IsStepBlocked(cp.Pos, next) {
			return ErrBlocked
		}
		cp.Pos = next
		cp.Moves++
		res.Warden, err = m.endTurn(r)
		return err
	})
	if err != nil {
		return TurnResult{}, err
	}
	res.Room = out
	m.announce(out, "move-applied", res)
	return res, nil
}

// Pass ends the current player's turn without moving.
func (m *Manager) Pass(code, playerID string) (TurnResult, error) {
	var res TurnResult
	out, err := m.update(code, func(r *Room) error {
		if _, err := m.takeTurn(r, playerID); err != nil {
			return err
		}
		var err error
		res.Warden, err = m.endTurn(r)
		return err
	})
	if err != nil {
		return TurnResult{}, err
	}
	res.Room = out
	m.announce(out, "turn-passed", res)
	return res, nil
}

// UseSkill runs one of the current player's skills.
func (m *Manager) UseSkill(code, playerID string, skill Skill) (TurnResult, error) {
	h, ok := skillHandlers[skill]
	if !ok {
		return TurnResult{}, fmt.Errorf("%w: %d", ErrUnknownSkill, int(skill))
	}
	var res TurnResult
	out, err := m.update(code, func(r *Room) error {
		cp, err := m.takeTurn(r, playerID)
		if err != nil {
			return err
		}
		if own := cp.Character.Skill(); own != skill {
			return fmt.Errorf("%w: a %s has %s, not %s", ErrSkillNotOwned, cp.Character, own, skill)
		}
		if left := cp.Cooldown(skill); left > 0 {
			return fmt.Errorf("%w: %s ready in %d turns", ErrSkillCooldown, skill, left)
		}
		sr, err := h.run(r, cp)
		if err != nil {
			return err
		}
		cp.ReadyAt[skill] = cp.Turns + h.cooldown(m.cfg.Cooldowns)
		res.Skill = &sr
		if !sr.EndsTurn {
			return nil
		}
		res.Warden, err = m.endTurn(r)
		return err
	})
	if err != nil {
		return TurnResult{}, err
	}
	res.Room = out
	m.announce(out, "skill-used", res)
	return res, nil
}

// endTurn closes the current player's turn. Unless someone has won, the
// turn passes on and the warden answers.
func (m *Manager) endTurn(r *Room) (*maze.Decision, error) {
	cp := r.current()
	cp.Turns++
	if p, ok := maze.Winner(r.Snapshot().Players); ok {
		id := p.ID
		r.WinnerID = &id
		m.log.WithFields(log.Fields{"room": r.Code, "player": id, "turns": r.TurnCount + 1}).Info("player reached goal")
		r.TurnCount++
		return nil, nil
	}
	r.TurnCount++
	r.TurnIdx = (r.TurnIdx + 1) % len(r.Players)
	return m.wardenPlay(r)
}

func (m *Manager) wardenPlay(r *Room) (*maze.Decision, error) {
	var opts []maze.PlanOption
	if r.WallsLeft() == 0 {
		opts = append(opts, maze.WithoutPlacements())
	}
	start := time.Now()
	dec, err := m.driver.Decide(r.Snapshot(), opts...)
	if err != nil {
		return nil, err
	}
	if err := r.apply(dec.Action); err != nil {
		return nil, err
	}
	r.LastWarden = &dec
	m.log.WithFields(log.Fields{
		"room":       r.Code,
		"action":     dec.Action.String(),
		"score":      dec.Score,
		"candidates": dec.Candidates,
		"elapsed":    time.Since(start),
	}).Debug("warden played")
	return &dec, nil
}

// WardenTurn lets the warden act out of turn.
func (m *Manager) WardenTurn(code string) (maze.Decision, error) {
	var dec *maze.Decision
	out, err := m.update(code, func(r *Room) error {
		if r.Finished() {
			return ErrGameOver
		}
		var err error
		dec, err = m.wardenPlay(r)
		return err
	})
	if err != nil {
		return maze.Decision{}, err
	}
	m.hub.Broadcast(code, "warden-played", map[string]interface{}{"decision": dec, "room": out})
	return *dec, nil
}

// Path is a player's current shortest route to its goal.
func (m *Manager) Path(code, playerID string) ([]maze.Pos, int, error) {
	r, ok := m.Get(code)
	if !ok {
		return nil, 0, ErrRoomNotFound
	}
	p := r.player(playerID)
	if p == nil {
		return nil, 0, ErrPlayerNotFound
	}
	g, err := r.grid()
	if err != nil {
		return nil, 0, err
	}
	path, err := g.ShortestPath(p.Pos, p.Goal)
	if err != nil {
		return nil, 0, err
	}
	if path == nil {
		return nil, maze.Unreachable, nil
	}
	return path, len(path) - 1, nil
}

func (m *Manager) announce(r Room, action string, res TurnResult) {
	m.hub.Broadcast(r.Code, action, res)
	if r.Finished() {
		m.hub.Broadcast(r.Code, "game-over", map[string]interface{}{
			"winner": *r.WinnerID,
			"rank":   m.Rank(r),
		})
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

type RankRow struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Distance int    `json:"distance"`
	Moves    int    `json:"moves"`
}

// Rank orders players by remaining distance, then by moves spent.
func (m *Manager) Rank(r Room) []RankRow {
	g, err := r.grid()
	if err != nil {
		return nil
	}
	out := make([]RankRow, 0, len(r.Players))
	for _, p := range r.Players {
		d, err := g.ShortestDistance(p.Pos, p.Goal)
		if err != nil {
			d = maze.Unreachable
		}
		out = append(out, RankRow{PlayerID: p.ID, Name: p.Name, Distance: d, Moves: p.Moves})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Moves < out[j].Moves
	})
	return out
}
