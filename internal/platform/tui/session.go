package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// GameFactory creates a fresh game for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) registry.Game

// BestSource reports the best score for the title menu.
type BestSource interface {
	Best() int
}

// SessionConfig holds what a session needs beyond the terminal size.
type SessionConfig struct {
	NewGame GameFactory
	GameID  string         // Game whose runs the scoreboard lists
	Store   *storage.Store // May be nil
	Best    BestSource     // May be nil
	Preset  config.DifficultyPreset
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel runs the full flow: menu, game, scoreboard and back.
// Local menu play and every SSH session use it.
type SessionModel struct {
	cfg        SessionConfig
	runtime    core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	game       *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session that starts on the title menu.
func NewSessionModel(cfg SessionConfig, runtime core.RuntimeConfig) SessionModel {
	m := SessionModel{cfg: cfg, runtime: runtime}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.cfg.Best != nil {
		best = m.cfg.Best.Best()
	}
	return NewMenuModel(m.cfg.Preset, best, m.runtime.ScreenW, m.runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoicePlay:
		preset := m.menu.Difficulty()
		m.cfg.Preset = preset
		game := NewModel(m.cfg.NewGame(preset), m.cfg.Store, m.runtime, string(preset))
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	case ChoiceScores:
		board := NewScoreboardModel(m.cfg.Store, m.cfg.GameID, m.runtime.ScreenW, m.runtime.ScreenH)
		m.scoreboard = &board
		m.screen = screenScores
		return m, board.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	game := next.(Model)
	m.game = &game

	switch {
	case game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case game.BackToMenu():
		return m.backToMenu(), nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	board := next.(ScoreboardModel)
	m.scoreboard = &board

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		return m.backToMenu(), nil
	}
	return m, cmd
}

func (m SessionModel) backToMenu() SessionModel {
	m.game = nil
	m.scoreboard = nil
	m.screen = screenMenu
	m.menu = m.newMenu()
	return m
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu flow in the local terminal.
func RunSession(cfg SessionConfig, runtime core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(cfg, runtime), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
