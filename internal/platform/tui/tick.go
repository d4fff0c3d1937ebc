// Package tui runs games in the terminal with Bubble Tea. It hosts the game
// screen, the title menu and scoreboard, and the SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// holdTime is how long a movement or fire key stays down after a press.
// Auto-repeat refreshes it while the key is physically held.
const holdTime = 200 * time.Millisecond

// TickMsg advances the simulation by one fixed step.
type TickMsg time.Time

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// holdTicks converts holdTime to whole ticks, at least one.
func holdTicks(tickRate int) int {
	return max(1, int(holdTime/tickInterval(tickRate)))
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
