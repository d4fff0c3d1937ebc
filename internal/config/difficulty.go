package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetScaling multiplies the base configuration for a preset.
type presetScaling struct {
	enemySpeed      float64 // Replaces enemies.speed_scale
	powerUpInterval float64 // Scales powerups.spawn_interval
	invincibility   float64 // Scales player.invincible_ticks
}

var presetScalings = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {enemySpeed: 0.8, powerUpInterval: 0.7, invincibility: 1.5},
	DifficultyNormal: {enemySpeed: 1.0, powerUpInterval: 1.0, invincibility: 1.0},
	DifficultyHard:   {enemySpeed: 1.25, powerUpInterval: 1.5, invincibility: 0.75},
}

// ParseDifficultyPreset converts a flag or config value to a preset.
// The empty string is accepted and means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed): %w", s, ErrInvalidConfig)
	}
}

// IsFixedPreset returns true if the preset leaves the loaded values untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyShmupPreset modifies a freshly loaded config for a difficulty preset.
// Lives are not affected. Applying a preset twice compounds the interval
// and invincibility scaling.
func ApplyShmupPreset(cfg *ShmupConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Preset = string(preset)
		return
	}
	sc, ok := presetScalings[preset]
	if !ok {
		return
	}

	cfg.Difficulty.Preset = string(preset)
	cfg.Enemies.SpeedScale = sc.enemySpeed
	cfg.PowerUps.SpawnInterval = time.Duration(float64(cfg.PowerUps.SpawnInterval) * sc.powerUpInterval)
	cfg.Player.InvincibleTicks = int(float64(cfg.Player.InvincibleTicks) * sc.invincibility)
}
