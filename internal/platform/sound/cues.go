package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
)

// Sink plays finished streamers.
type Sink interface {
	Play(s beep.Streamer)
}

// Speaker mixes cues onto the default audio device.
type Speaker struct {
	mixer *beep.Mixer
}

// OpenSpeaker initializes the audio device. Only one speaker may be open
// per process.
func OpenSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &Speaker{mixer: mixer}, nil
}

// Play starts s without waiting for it to finish.
func (s *Speaker) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

// Cues is a shmup.Listener that plays a cue for notable game events.
type Cues struct {
	shmup.NopListener

	sink   Sink
	volume float64
	lives  int
	active map[shmup.PowerUpType]bool
}

// NewCues plays cues on sink at volume, clamped to [0, 1].
func NewCues(sink Sink, volume float64) *Cues {
	return &Cues{
		sink:   sink,
		volume: core.ClampF(volume, 0, 1),
		active: make(map[shmup.PowerUpType]bool),
	}
}

func (c *Cues) play(cue Cue) {
	c.sink.Play(Build(cue, c.volume))
}

func (c *Cues) EntitySpawned(kind shmup.EntityKind, _ uint64, _ core.Vec2) {
	if kind == shmup.KindBullet || kind == shmup.KindMissile {
		c.play(CueShoot)
	}
}

func (c *Cues) Impact(kind shmup.ImpactKind, _ core.Vec2) {
	switch kind {
	case shmup.ImpactKill, shmup.ImpactExplosion:
		c.play(CueExplosion)
	case shmup.ImpactLaser:
		c.play(CueLaser)
	}
}

func (c *Cues) LivesChanged(lives int) {
	if lives < c.lives {
		c.play(CueHit)
	}
	c.lives = lives
}

// PowerUpStatusChanged plays the pickup cue when a power-up turns on.
// Status updates while it stays on are silent.
func (c *Cues) PowerUpStatusChanged(t shmup.PowerUpType, active bool, _ time.Duration) {
	if active && !c.active[t] {
		c.play(CuePickup)
	}
	c.active[t] = active
}

func (c *Cues) WaveComplete(int) {
	c.play(CueWave)
}

func (c *Cues) GameOver(int, int) {
	c.play(CueGameOver)
}

func (c *Cues) StateChanged(from, to shmup.State) {
	if to == shmup.StateStart || from == shmup.StateGameOver {
		clear(c.active)
	}
}
