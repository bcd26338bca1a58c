package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "HORSE_RACE_"

// ApplyEnv loads dotenv files (default ".env", missing files ignored) and then
// applies HORSE_RACE_* overrides; variables already in the process environment win over file values
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	if v, ok := lookup("FRAME_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("FRAME_INTERVAL", v, err)
		}
		c.FrameInterval = d
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError("SEED", v, err)
		}
		c.Seed = n
	}
	if v, ok := lookup("NAMES"); ok {
		names := strings.Split(v, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		c.Names = names
	}
	if v, ok := lookup("AUDIO_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("AUDIO_ENABLED", v, err)
		}
		c.Audio.Enabled = b
	}
	// Volume is given as 0-100
	if v, ok := lookup("VOLUME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("VOLUME", v, err)
		}
		c.Audio.Volume = min(max(float64(n)/100, 0), 1)
	}
	if v, ok := lookup("HISTORY_DIR"); ok {
		c.History.Dir = v
	}
	if v, ok := lookup("COLOR"); ok {
		c.Terminal.Color = v
	}
	if v, ok := lookup("DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("DEBUG", v, err)
		}
		c.Log.Debug = b
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func envError(key, value string, err error) error {
	return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, value, err)
}
