package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
	"github.com/vovakirdan/tui-shmup/internal/platform/sound"
	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// env is everything a game command opens before starting the TUI.
type env struct {
	logger  *log.Logger
	preset  config.DifficultyPreset
	store   *storage.Store // nil when the database cannot be opened
	best    *storage.BestScore
	speaker *sound.Speaker // nil unless --sound
	closers []func()
}

// newLogger builds the logger. The TUI owns the terminal, so unless logging
// to a file or serving, log output is discarded.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shmup",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// resolvePreset validates the config and returns the difficulty to play.
// --difficulty wins over the preset named in the config file.
func resolvePreset() (config.DifficultyPreset, error) {
	flagPreset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return "", err
	}
	cfg, err := config.LoadShmup(flagConfig)
	if err != nil {
		return "", err
	}
	if flagPreset != "" {
		return flagPreset, nil
	}
	filePreset, err := config.ParseDifficultyPreset(cfg.Difficulty.Preset)
	if err != nil {
		return "", err
	}
	if filePreset == "" {
		return config.DifficultyNormal, nil
	}
	return filePreset, nil
}

// openEnv prepares logging, configuration and storage. Storage and sound
// failures are warnings; the game runs without them.
func openEnv(logToStderr bool) (*env, error) {
	logger, closeLog, err := newLogger(logToStderr)
	if err != nil {
		return nil, err
	}
	e := &env{logger: logger, closers: []func(){closeLog}}

	if e.preset, err = resolvePreset(); err != nil {
		e.close()
		return nil, err
	}

	if e.store, err = storage.Open(flagDBPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		e.store = nil
	} else {
		e.closers = append(e.closers, func() { e.store.Close() })
	}

	e.best, err = storage.OpenBestScore(storage.DefaultAppName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: best score will not be saved: %v\n", err)
	}

	if flagSound {
		if e.speaker, err = sound.OpenSpeaker(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			e.speaker = nil
		} else {
			e.closers = append(e.closers, e.speaker.Close)
		}
	}

	logger.Debug("environment ready", "preset", e.preset, "db", flagDBPath, "sound", e.speaker != nil)
	return e, nil
}

func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// gameOptions returns the options every game of this process shares.
// withSound adds the local sound cues.
func (e *env) gameOptions(withSound bool) []shmup.Option {
	opts := []shmup.Option{
		shmup.WithConfigPath(flagConfig),
		shmup.WithDifficulty(e.preset),
		shmup.WithHighScores(e.best),
		shmup.WithLogger(e.logger),
	}
	if withSound && e.speaker != nil {
		opts = append(opts, shmup.WithListener(sound.NewCues(e.speaker, flagVolume)))
	}
	return opts
}

// gameFactory creates games on top of the shared options, one per
// difficulty the player picks.
func (e *env) gameFactory(withSound bool) tui.GameFactory {
	base := e.gameOptions(withSound)
	return func(preset config.DifficultyPreset) registry.Game {
		opts := append(base[:len(base):len(base)], shmup.WithDifficulty(preset))
		return shmup.New(opts...)
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
