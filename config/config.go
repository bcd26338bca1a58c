package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/horse-race/race"
)

// ErrInvalid marks configuration values that cannot be used
var ErrInvalid = errors.New("invalid config")

// Config is the full program configuration
type Config struct {
	// FrameInterval is the frame clock period; movement is per frame, so this sets race pace
	FrameInterval time.Duration `toml:"frame_interval"`
	// Seed for the speed generator, 0 picks one from the clock
	Seed  uint64   `toml:"seed"`
	Names []string `toml:"names"`

	Track    TrackConfig    `toml:"track"`
	Speed    SpeedConfig    `toml:"speed"`
	Terminal TerminalConfig `toml:"terminal"`
	Audio    AudioConfig    `toml:"audio"`
	History  HistoryConfig  `toml:"history"`
	Log      LogConfig      `toml:"log"`
}

type TrackConfig struct {
	Ratio float64 `toml:"ratio"`
}

// SpeedConfig is the per-frame speed range [Min, Max)
type SpeedConfig struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// TerminalConfig maps the race's pixel space onto character cells
type TerminalConfig struct {
	CellWidth  int    `toml:"cell_width"`
	CellHeight int    `toml:"cell_height"`
	PanelWidth int    `toml:"panel_width"`
	Color      string `toml:"color"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// HistoryConfig controls the results journal; an empty Dir disables it
type HistoryConfig struct {
	Dir  string `toml:"dir"`
	Keep int    `toml:"keep"`
}

type LogConfig struct {
	Debug   bool   `toml:"debug"`
	Dir     string `toml:"dir"`
	MaxSize int64  `toml:"max_size"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FrameInterval: 16 * time.Millisecond,
		Names:         append([]string(nil), race.DefaultNames[:]...),
		Track:         TrackConfig{Ratio: race.DefaultTrackRatio},
		Speed:         SpeedConfig{Min: race.DefaultSpeedMin, Max: race.DefaultSpeedMax},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			PanelWidth: 22,
			Color:      "auto",
		},
		Audio:   AudioConfig{Enabled: true, Volume: 0.6},
		History: HistoryConfig{Keep: 100},
		Log: LogConfig{
			Dir:     "logs",
			MaxSize: 10 * 1024 * 1024,
		},
	}
}

// Load reads a TOML file over the defaults; an empty path returns the defaults
// Unknown keys are rejected so typos do not silently fall back
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalid, path, undecoded)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys: %v", ErrInvalid, undecoded)
	}
	return cfg, nil
}

// Validate checks ranges and the runner list
func (c *Config) Validate() error {
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive, got %v", ErrInvalid, c.FrameInterval)
	}
	if len(c.Names) != race.LaneCount {
		return fmt.Errorf("%w: need exactly %d names, got %d", ErrInvalid, race.LaneCount, len(c.Names))
	}
	seen := make(map[string]struct{}, len(c.Names))
	for _, name := range c.Names {
		if name == "" {
			return fmt.Errorf("%w: empty runner name", ErrInvalid)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate runner name %q", ErrInvalid, name)
		}
		seen[name] = struct{}{}
	}
	if c.Track.Ratio <= 0 || c.Track.Ratio > 1 {
		return fmt.Errorf("%w: track.ratio must be in (0, 1], got %v", ErrInvalid, c.Track.Ratio)
	}
	if c.Speed.Min < 0 || c.Speed.Max <= c.Speed.Min {
		return fmt.Errorf("%w: speed range [%v, %v) is empty or negative", ErrInvalid, c.Speed.Min, c.Speed.Max)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: terminal cell size must be positive, got %dx%d", ErrInvalid, c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.PanelWidth < 0 {
		return fmt.Errorf("%w: terminal.panel_width must not be negative", ErrInvalid)
	}
	switch c.Terminal.Color {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("%w: terminal.color must be auto, truecolor or 256, got %q", ErrInvalid, c.Terminal.Color)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}
	if c.History.Keep < 0 {
		return fmt.Errorf("%w: history.keep must not be negative", ErrInvalid)
	}
	return nil
}

// RaceConfig converts to the race model's parameters
func (c *Config) RaceConfig() race.Config {
	rc := race.Config{SpeedMin: c.Speed.Min, SpeedMax: c.Speed.Max}
	copy(rc.Names[:], c.Names)
	return rc
}
