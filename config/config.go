// Package config loads the machine layout and spin choreography settings.
//
// Precedence, lowest to highest: built-in defaults, YAML file, .env file, REEL_* environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/reel-spin/constants"
)

// Environment variable names
const (
	EnvReelCount        = "REEL_COUNT"
	EnvDigits           = "REEL_DIGITS"
	EnvTargets          = "REEL_TARGETS"
	EnvStagger          = "REEL_STAGGER"
	EnvBlindRotations   = "REEL_BLIND_ROTATIONS"
	EnvRotationInterval = "REEL_ROTATION_INTERVAL"
	EnvAudio            = "REEL_AUDIO"
	EnvVolume           = "REEL_VOLUME"
)

var (
	ErrReelCount = errors.New("config: reel count must be positive")
	ErrDigits    = errors.New("config: digit strip must not be empty")
	ErrDigitSpan = errors.New("config: reel digits must be within 0-9")
	ErrTargets   = errors.New("config: one target digit per reel required")
	ErrTiming    = errors.New("config: invalid timing")
	ErrVolume    = errors.New("config: volume must be within [0, 1]")
)

// Config is the complete runtime configuration
type Config struct {
	Reels   ReelsConfig   `yaml:"reels"`
	Spin    SpinConfig    `yaml:"spin"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReelsConfig describes the reel strips and the winning digits
type ReelsConfig struct {
	Count   int   `yaml:"count"`
	Digits  []int `yaml:"digits"`
	Targets []int `yaml:"targets"`
}

// SpinConfig describes the choreography timing
type SpinConfig struct {
	Stagger          time.Duration `yaml:"stagger"`
	BlindRotations   int           `yaml:"blind_rotations"`
	RotationInterval time.Duration `yaml:"rotation_interval"`
}

// AudioConfig toggles synthesized reel sounds
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LoggingConfig controls the debug log file
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Default returns the reference machine: five 9..0 reels landing on 8 5 2 4 1
func Default() *Config {
	return &Config{
		Reels: ReelsConfig{
			Count:   constants.DefaultReelCount,
			Digits:  append([]int(nil), constants.DefaultDigits...),
			Targets: append([]int(nil), constants.DefaultTargets...),
		},
		Spin: SpinConfig{
			Stagger:          constants.StaggerInterval,
			BlindRotations:   constants.BlindRotations,
			RotationInterval: constants.RotationInterval,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Logging: LoggingConfig{
			Dir: "logs",
		},
	}
}

// Load builds a Config from defaults, the optional YAML file at path and the environment
// envFiles are passed to godotenv; missing .env files are not an error
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.Merge(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays YAML data on the current values
func (c *Config) Merge(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// loadEnvFiles does not override variables already present in the process environment
func loadEnvFiles(files []string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from REEL_* variables found by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvReelCount); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvReelCount, err)
		}
		c.Reels.Count = n
	}
	if v, ok := lookup(EnvDigits); ok {
		digits, err := ParseDigits(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDigits, err)
		}
		c.Reels.Digits = digits
	}
	if v, ok := lookup(EnvTargets); ok {
		targets, err := ParseDigits(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTargets, err)
		}
		c.Reels.Targets = targets
	}
	if v, ok := lookup(EnvStagger); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStagger, err)
		}
		c.Spin.Stagger = d
	}
	if v, ok := lookup(EnvBlindRotations); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBlindRotations, err)
		}
		c.Spin.BlindRotations = n
	}
	if v, ok := lookup(EnvRotationInterval); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRotationInterval, err)
		}
		c.Spin.RotationInterval = d
	}
	if v, ok := lookup(EnvAudio); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := lookup(EnvVolume); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		c.Audio.Volume = f
	}
	return nil
}

// ParseDigits parses a comma or space separated digit list such as "8,5,2,4,1"
func ParseDigits(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Validate checks structural consistency
// Whether each target appears on its strip is checked by the choreographer at construction
func (c *Config) Validate() error {
	if c.Reels.Count <= 0 {
		return ErrReelCount
	}
	if len(c.Reels.Digits) == 0 {
		return ErrDigits
	}
	// Each reel cell draws exactly one glyph
	for i, d := range c.Reels.Digits {
		if d < 0 || d > 9 {
			return fmt.Errorf("%w: digits[%d]=%d", ErrDigitSpan, i, d)
		}
	}
	if len(c.Reels.Targets) != c.Reels.Count {
		return fmt.Errorf("%w: %d reels, %d targets", ErrTargets, c.Reels.Count, len(c.Reels.Targets))
	}
	if c.Spin.Stagger < 0 || c.Spin.RotationInterval < 0 || c.Spin.BlindRotations < 0 {
		return fmt.Errorf("%w: stagger=%v rotation_interval=%v blind_rotations=%d",
			ErrTiming, c.Spin.Stagger, c.Spin.RotationInterval, c.Spin.BlindRotations)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return ErrVolume
	}
	return nil
}
