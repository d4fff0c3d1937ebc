package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start on the title menu.

Pick a difficulty with Left/Right, start with Enter and open the
scoreboard from the menu. After a game, B returns to the menu.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change difficulty
  Enter/Space    - Select
  Q              - Quit

Examples:
  shmup menu
  shmup menu --fps 30
  shmup menu --db ./shmup.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e, err := openEnv(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := tui.SessionConfig{
		NewGame: e.gameFactory(true),
		GameID:  gameID,
		Store:   e.store,
		Best:    e.best,
		Preset:  e.preset,
	}

	runErr := tui.RunSession(session, runtimeConfig())
	e.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
