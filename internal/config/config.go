package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"go.yaml.in/yaml/v3"

	"maze-warden/internal/maze"
)

type Warden struct {
	// Workers bounds how many candidates are scored concurrently.
	Workers int `yaml:"workers" json:"workers"`
	// WallBudget is how many walls the warden may place per room, 0 for no limit.
	WallBudget int `yaml:"wall_budget" json:"wallBudget"`
}

type Cooldowns struct {
	WallDestroyer int `yaml:"wall_destroyer" json:"wallDestroyer"`
	Teleport      int `yaml:"teleport" json:"teleport"`
	ExitScanner   int `yaml:"exit_scanner" json:"exitScanner"`
}

type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type Config struct {
	HTTPAddr  string    `yaml:"http_addr" json:"httpAddr"`
	BoardSize int       `yaml:"board_size" json:"boardSize"`
	Warden    Warden    `yaml:"warden" json:"warden"`
	Cooldowns Cooldowns `yaml:"cooldowns" json:"cooldowns"`
	Log       Log       `yaml:"log" json:"log"`
}

func Default() Config {
	return Config{
		HTTPAddr:  ":8080",
		BoardSize: 9,
		Warden: Warden{
			Workers:    runtime.NumCPU(),
			WallBudget: 0,
		},
		Cooldowns: Cooldowns{
			WallDestroyer: 3,
			Teleport:      5,
			ExitScanner:   7,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load builds the configuration from defaults, the YAML file named by
// MAZE_CONFIG (if any) and environment overrides, in that order.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("MAZE_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.BoardSize = getenvInt("BOARD_SIZE", c.BoardSize)
	c.Warden.Workers = getenvInt("WARDEN_WORKERS", c.Warden.Workers)
	c.Warden.WallBudget = getenvInt("WALL_BUDGET", c.Warden.WallBudget)
	c.Cooldowns.WallDestroyer = getenvInt("COOLDOWN_WALL_DESTROYER", c.Cooldowns.WallDestroyer)
	c.Cooldowns.Teleport = getenvInt("COOLDOWN_TELEPORT", c.Cooldowns.Teleport)
	c.Cooldowns.ExitScanner = getenvInt("COOLDOWN_EXIT_SCANNER", c.Cooldowns.ExitScanner)
	c.Log.Level = getenv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenv("LOG_FORMAT", c.Log.Format)
}

var (
	ErrBoardSize = errors.New("config: board size out of range")
	ErrNegative  = errors.New("config: value must not be negative")
)

func (c Config) Validate() error {
	if c.BoardSize < 3 || c.BoardSize > maze.MaxSize {
		return fmt.Errorf("%w: %d, want 3..%d", ErrBoardSize, c.BoardSize, maze.MaxSize)
	}
	for name, v := range map[string]int{
		"warden.wall_budget":       c.Warden.WallBudget,
		"cooldowns.wall_destroyer": c.Cooldowns.WallDestroyer,
		"cooldowns.teleport":       c.Cooldowns.Teleport,
		"cooldowns.exit_scanner":   c.Cooldowns.ExitScanner,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegative, name, v)
		}
	}
	return nil
}
