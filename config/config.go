// Package config loads runtime settings from an optional .env file and REEF_* variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
)

// ErrInvalid is returned when a variable cannot be parsed or fails validation
var ErrInvalid = errors.New("invalid configuration")

// Leaderboard backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config is the resolved runtime configuration
type Config struct {
	Debug bool
	Seed  int64
	Audio bool

	Leaderboard     string
	LeaderboardPath string // Empty selects the default path under the user config dir
	DatabaseURL     string
	LeaderboardTop  int

	HoldWindow time.Duration

	Tuning engine.Tuning
}

// Load reads .env (when present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}
	return FromLookup(os.LookupEnv)
}

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// FromLookup builds a Config from lookup, falling back to defaults for unset keys
func FromLookup(lookup LookupFunc) (*Config, error) {
	r := reader{lookup: lookup}

	cfg := &Config{
		Debug:           r.getBool("REEF_DEBUG", false),
		Seed:            r.getInt64("REEF_SEED", 0),
		Audio:           r.getBool("REEF_AUDIO", true),
		Leaderboard:     strings.ToLower(r.getString("REEF_LEADERBOARD", BackendFile)),
		LeaderboardPath: r.getString("REEF_LEADERBOARD_PATH", ""),
		DatabaseURL:     r.getString("REEF_DATABASE_URL", ""),
		LeaderboardTop:  r.getInt("REEF_LEADERBOARD_TOP", constants.LeaderboardSize),
		HoldWindow:      r.getDuration("REEF_HOLD_WINDOW", constants.KeyHoldWindow),
		Tuning:          engine.DefaultTuning(),
	}

	t := &cfg.Tuning
	t.StartingLives = r.getInt("REEF_STARTING_LIVES", t.StartingLives)
	t.LevelInterval = r.getDuration("REEF_LEVEL_INTERVAL", t.LevelInterval)
	t.ObstacleInterval = r.getDuration("REEF_OBSTACLE_INTERVAL", t.ObstacleInterval)
	t.CollectibleInterval = r.getDuration("REEF_COLLECTIBLE_INTERVAL", t.CollectibleInterval)
	t.MinSpawnInterval = r.getDuration("REEF_MIN_SPAWN_INTERVAL", t.MinSpawnInterval)
	t.ScrollSpeed = r.getFloat("REEF_SCROLL_SPEED", t.ScrollSpeed)
	t.PlayerSpeed = r.getFloat("REEF_PLAYER_SPEED", t.PlayerSpeed)

	if r.err != nil {
		return nil, r.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	switch c.Leaderboard {
	case BackendFile, BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: REEF_DATABASE_URL required for postgres leaderboard", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown leaderboard backend %q", ErrInvalid, c.Leaderboard)
	}
	if c.LeaderboardTop < 1 {
		return fmt.Errorf("%w: REEF_LEADERBOARD_TOP must be at least 1", ErrInvalid)
	}
	if c.HoldWindow <= 0 {
		return fmt.Errorf("%w: REEF_HOLD_WINDOW must be positive", ErrInvalid)
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// reader records the first parse error and returns defaults after it
type reader struct {
	lookup LookupFunc
	err    error
}

func (r *reader) raw(key string) (string, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (r *reader) fail(key, value string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, value, err)
	}
}

func (r *reader) getString(key, def string) string {
	if v, ok := r.raw(key); ok {
		return v
	}
	return def
}

func (r *reader) getBool(key string, def bool) bool {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return b
}

func (r *reader) getInt(key string, def int) int {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *reader) getInt64(key string, def int64) int64 {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *reader) getFloat(key string, def float64) float64 {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return f
}

// duration accepts Go duration strings or a bare integer of milliseconds
func (r *reader) getDuration(key string, def time.Duration) time.Duration {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return d
}
