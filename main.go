package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"maze-warden/internal/config"
	"maze-warden/internal/logging"
	"maze-warden/internal/maze"
	"maze-warden/internal/room"
	"maze-warden/internal/store"
)

func main() {
	app := &cli.App{
		Name:  "maze-warden",
		Usage: "walk the maze while the warden builds walls around you",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 9, Usage: "board size"},
			&cli.StringFlag{Name: "mode", Value: string(room.ModeDuel), Usage: "duel (reach the far row) or race (reach the exit)"},
			&cli.StringFlag{Name: "character", Value: room.CharacterWarrior.String(), Usage: "warrior (destroys walls), mage (teleports) or scout (scans for the exit)"},
			&cli.IntFlag{Name: "budget", Usage: "walls the warden may place, 0 for no limit"},
			&cli.IntFlag{Name: "workers", Value: 1, Usage: "goroutines scoring warden candidates"},
			&cli.StringFlag{Name: "log-level", Value: "warn", EnvVars: []string{"LOG_LEVEL"}},
		},
		Action: play,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play(c *cli.Context) error {
	cfg := config.Default()
	cfg.BoardSize = c.Int("size")
	cfg.Warden.Workers = c.Int("workers")
	cfg.Warden.WallBudget = c.Int("budget")
	cfg.Log.Level = c.String("log-level")
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	var ch room.Character
	if err := ch.UnmarshalText([]byte(c.String("character"))); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	logger := log.NewEntry(logging.New(cfg.Log))

	rm := room.NewManager(store.NewMemoryStore(), cfg, nil, logger)
	rx, err := rm.CreateRoom("You", room.Options{Mode: room.Mode(c.String("mode")), Character: ch})
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	return loop(rm, rx.Code, rx.Players[0].ID, os.Stdin, os.Stdout)
}

var moveKeys = map[string]room.Direction{
	"w": room.Up,
	"s": room.Down,
	"a": room.Left,
	"d": room.Right,
}

var skillKeys = map[string]room.Skill{
	"x": room.SkillWallDestroyer,
	"t": room.SkillTeleport,
	"e": room.SkillExitScanner,
}

func loop(rm *room.Manager, code, playerID string, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	var highlight []maze.Pos
	for {
		rx, ok := rm.Get(code)
		if !ok {
			return room.ErrRoomNotFound
		}
		printBoard(out, rx, highlight)
		highlight = nil
		if rx.Finished() {
			fmt.Fprintf(out, "\nYou escaped in %d moves.\n", rx.Players[0].Moves)
			return nil
		}
		printStatus(out, rx)

		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		key := strings.ToLower(strings.TrimSpace(line))

		var res room.TurnResult
		switch {
		case key == "q":
			return nil
		case key == "p":
			res, err = rm.Pass(code, playerID)
		case moveKeys[key] != "":
			res, err = rm.Move(code, playerID, moveKeys[key])
		case skillKeys[key] != 0:
			res, err = rm.UseSkill(code, playerID, skillKeys[key])
		default:
			fmt.Fprintln(out, "w/a/s/d move, p pass, x destroy wall (warrior), t teleport (mage), e scan exit (scout), q quit")
			continue
		}
		if err != nil {
			fmt.Fprintln(out, "Not allowed:", err)
			continue
		}
		if res.Skill != nil && res.Skill.Skill == room.SkillExitScanner {
			highlight = res.Skill.Path
			fmt.Fprintf(out, "Exit is %d steps away.\n", len(res.Skill.Path)-1)
		}
		if res.Warden != nil {
			fmt.Fprintf(out, "Warden: %s (score %d)\n", res.Warden.Action, res.Warden.Score)
		}
	}
}

func printStatus(out io.Writer, rx room.Room) {
	p := rx.Players[0]
	left := "unlimited"
	if n := rx.WallsLeft(); n >= 0 {
		left = fmt.Sprint(n)
	}
	fmt.Fprintf(out, "Turn %d  walls %d (left %s)\n", rx.TurnCount+1, len(rx.Walls), left)
	s := p.Character.Skill()
	state := "ready"
	if cd := p.Cooldown(s); cd > 0 {
		state = fmt.Sprintf("%d turns", cd)
	}
	fmt.Fprintf(out, "  %s: %-15s %s\n", p.Character, s, state)
}

var kindGlyph = map[maze.WallKind]string{
	maze.KindBlocking:    "#",
	maze.KindInvisible:   ":",
	maze.KindBouncing:    "~",
	maze.KindTeleporting: "*",
}

// printBoard draws cells as "." with "@" for players, "X" for an exit cell
// and "o" for a highlighted path. Horizontal walls sit between columns,
// vertical walls under their cell.
func printBoard(out io.Writer, rx room.Room, highlight []maze.Pos) {
	walls := make(map[maze.WallKey]maze.WallKind, len(rx.Walls))
	for _, w := range rx.Walls {
		walls[w.Key()] = w.Kind
	}
	onPath := map[maze.Pos]bool{}
	for _, p := range highlight {
		onPath[p] = true
	}
	cell := func(pos maze.Pos) string {
		for _, p := range rx.Players {
			if p.Pos == pos {
				return "@"
			}
		}
		for _, p := range rx.Players {
			if p.Goal.Kind == maze.GoalCell && p.Goal.Row == pos.Row && p.Goal.Col == pos.Col {
				return "X"
			}
		}
		if onPath[pos] {
			return "o"
		}
		return "."
	}

	var b strings.Builder
	b.WriteString("\n")
	for r := 0; r < rx.Size; r++ {
		for c := 0; c < rx.Size; c++ {
			b.WriteString(cell(maze.Pos{Row: r, Col: c}))
			if c < rx.Size-1 {
				sep := " "
				if k, ok := walls[maze.WallKey{Row: r, Col: c, Orientation: maze.Horizontal}]; ok {
					sep = kindGlyph[k]
				}
				b.WriteString(sep)
			}
		}
		b.WriteString("\n")
		if r == rx.Size-1 {
			break
		}
		for c := 0; c < rx.Size; c++ {
			sep := " "
			if k, ok := walls[maze.WallKey{Row: r, Col: c, Orientation: maze.Vertical}]; ok {
				sep = kindGlyph[k]
			}
			b.WriteString(sep)
			if c < rx.Size-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprint(out, b.String())
}
