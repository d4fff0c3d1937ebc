// Package config provides YAML-based game configuration loading and
// difficulty presets for the shoot-'em-up.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for configurations the game cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// ShmupConfig contains all configuration for the shoot-'em-up.
type ShmupConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Waves      WaveConfig       `yaml:"waves"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig is the logical size of the playfield in simulation units.
// The renderer scales it to whatever terminal size is available.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines ship movement and weapon parameters.
type PlayerConfig struct {
	Speed           float64       `yaml:"speed"`            // Units per tick
	Margin          float64       `yaml:"margin"`           // Distance kept from every edge
	FireRate        time.Duration `yaml:"fire_rate"`        // Minimum delay between shots
	RapidFireRate   time.Duration `yaml:"rapid_fire_rate"`  // Delay while rapid fire is active
	BulletSpeed     float64       `yaml:"bullet_speed"`     // Units per tick
	BulletDamage    int           `yaml:"bullet_damage"`    // Damage of a normal bullet
	InvincibleTicks int           `yaml:"invincible_ticks"` // Invincibility window after a hit
}

// EnemyConfig defines enemy spawning parameters.
type EnemyConfig struct {
	SpeedScale  float64 `yaml:"speed_scale"`  // Multiplies every enemy's speed
	SpawnMargin float64 `yaml:"spawn_margin"` // Horizontal margin for spawn positions
}

// PowerUpConfig defines power-up spawning and durations.
type PowerUpConfig struct {
	SpawnInterval time.Duration    `yaml:"spawn_interval"`
	FallSpeed     float64          `yaml:"fall_speed"`
	PickupRadius  float64          `yaml:"pickup_radius"`
	Durations     PowerUpDurations `yaml:"durations"`
}

// PowerUpDurations is how long each power-up stays active after pickup.
type PowerUpDurations struct {
	RapidFire time.Duration `yaml:"rapid_fire"`
	Laser     time.Duration `yaml:"laser"`
	Missile   time.Duration `yaml:"missile"`
	Shield    time.Duration `yaml:"shield"`
}

// WaveConfig defines wave pacing.
type WaveConfig struct {
	AnnounceDelay   time.Duration `yaml:"announce_delay"`   // Banner time before the next wave starts
	TransitionGuard time.Duration `yaml:"transition_guard"` // Upper bound of the transitioning phase
}

// TimingConfig defines lifetimes of cosmetic effects.
type TimingConfig struct {
	HitFlash  time.Duration `yaml:"hit_flash"`
	Explosion time.Duration `yaml:"explosion"`
	LaserBeam time.Duration `yaml:"laser_beam"`
}

// DifficultyConfig selects a difficulty preset from the config file.
// A preset given on the command line takes precedence.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}

// Validate reports the first setting the game cannot run with.
func (c ShmupConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("config: playfield %gx%g: %w", c.Playfield.Width, c.Playfield.Height, ErrInvalidConfig)
	case c.Player.Speed <= 0 || c.Player.BulletSpeed <= 0:
		return fmt.Errorf("config: player speeds must be positive: %w", ErrInvalidConfig)
	case c.Player.FireRate <= 0 || c.Player.RapidFireRate <= 0:
		return fmt.Errorf("config: fire rates must be positive: %w", ErrInvalidConfig)
	case c.Player.BulletDamage <= 0:
		return fmt.Errorf("config: bullet damage %d: %w", c.Player.BulletDamage, ErrInvalidConfig)
	case c.Player.InvincibleTicks < 0:
		return fmt.Errorf("config: invincible ticks %d: %w", c.Player.InvincibleTicks, ErrInvalidConfig)
	case c.Player.Margin*2 >= c.Playfield.Width || c.Player.Margin*2 >= c.Playfield.Height:
		return fmt.Errorf("config: player margin %g leaves no room: %w", c.Player.Margin, ErrInvalidConfig)
	case c.Enemies.SpeedScale <= 0:
		return fmt.Errorf("config: enemy speed scale %g: %w", c.Enemies.SpeedScale, ErrInvalidConfig)
	case c.PowerUps.SpawnInterval <= 0 || c.PowerUps.FallSpeed <= 0:
		return fmt.Errorf("config: power-up spawning must be positive: %w", ErrInvalidConfig)
	}

	d := c.PowerUps.Durations
	if d.RapidFire <= 0 || d.Laser <= 0 || d.Missile <= 0 || d.Shield <= 0 {
		return fmt.Errorf("config: power-up durations must be positive: %w", ErrInvalidConfig)
	}
	if c.Waves.AnnounceDelay < 0 || c.Waves.TransitionGuard <= 0 {
		return fmt.Errorf("config: wave timing: %w", ErrInvalidConfig)
	}
	if _, err := ParseDifficultyPreset(c.Difficulty.Preset); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
