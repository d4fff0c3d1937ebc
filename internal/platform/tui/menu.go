package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shmup/internal/config"
)

// MenuChoice is what the user picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScores
	itemQuit
	itemCount
)

// Difficulties lists the presets in the order the menu cycles through them.
var Difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
)

// MenuModel is the title menu: start a run, pick a difficulty, view scores.
type MenuModel struct {
	cursor     menuItem
	difficulty int // Index into Difficulties
	best       int
	width      int
	height     int
	choice     MenuChoice
}

// NewMenuModel creates a title menu with the given difficulty preselected,
// falling back to normal. best is shown under the title when positive.
func NewMenuModel(preset config.DifficultyPreset, best, width, height int) MenuModel {
	m := MenuModel{difficulty: 1, best: best, width: width, height: height}
	for i, p := range Difficulties {
		if p == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapMenuKey(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
	case MenuActionUp:
		m.cursor = (m.cursor + itemCount - 1) % itemCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % itemCount
	case MenuActionLeft:
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)
		}
	case MenuActionRight:
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		}
	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			m.choice = ChoicePlay
		case itemDifficulty:
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		case itemScores:
			m.choice = ChoiceScores
		case itemQuit:
			m.choice = ChoiceQuit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(1, m.height/4)))
	b.WriteString(centerStyled(menuTitleStyle.Render("S H O O T   ' E M   U P"), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.best), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	labels := [itemCount]string{
		itemPlay:       "Play",
		itemDifficulty: fmt.Sprintf("Difficulty: < %s >", m.Difficulty()),
		itemScores:     "High Scores",
		itemQuit:       "Quit",
	}
	for i, label := range labels {
		if menuItem(i) == m.cursor {
			b.WriteString(centerStyled(menuCurStyle.Render("> "+label+" "), m.width))
		} else {
			b.WriteString(centerText("  "+label+" ", m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerStyled(menuHintStyle.Render(hint), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what the user picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return Difficulties[m.difficulty]
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers already rendered text, ignoring escape sequences.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
