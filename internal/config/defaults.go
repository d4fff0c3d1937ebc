package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shmup.yaml
var defaultShmupYAML []byte

// DefaultShmupConfig returns the built-in configuration.
// It matches defaults/shmup.yaml and is used when the embedded file is unreadable.
func DefaultShmupConfig() ShmupConfig {
	return ShmupConfig{
		Playfield: PlayfieldConfig{
			Width:  960,
			Height: 720,
		},
		Player: PlayerConfig{
			Speed:           5,
			Margin:          15,
			FireRate:        250 * time.Millisecond,
			RapidFireRate:   100 * time.Millisecond,
			BulletSpeed:     10,
			BulletDamage:    1,
			InvincibleTicks: 120, // 2 seconds at 60fps
		},
		Enemies: EnemyConfig{
			SpeedScale:  1.0,
			SpawnMargin: 30,
		},
		PowerUps: PowerUpConfig{
			SpawnInterval: 10 * time.Second,
			FallSpeed:     2,
			PickupRadius:  30,
			Durations: PowerUpDurations{
				RapidFire: 10 * time.Second,
				Laser:     8 * time.Second,
				Missile:   12 * time.Second,
				Shield:    15 * time.Second,
			},
		},
		Waves: WaveConfig{
			AnnounceDelay:   2 * time.Second,
			TransitionGuard: 5 * time.Second,
		},
		Timing: TimingConfig{
			HitFlash:  100 * time.Millisecond,
			Explosion: 300 * time.Millisecond,
			LaserBeam: 500 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShmupYAML
}
