package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
	"github.com/vovakirdan/tui-shmup/internal/registry"
)

const gameID = "shmup"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back to the shell (when paused or after game over)
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower enemies, frequent power-ups, longer invincibility
  normal - The configured values
  hard   - Faster enemies, rare power-ups, shorter invincibility
  fixed  - No preset scaling at all

Examples:
  shmup play
  shmup play --difficulty hard
  shmup play --config ./my-shmup.yaml --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	e, err := openEnv(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shmup.Configure(e.gameOptions(true)...)
	game, err := registry.Create(gameID)
	if err != nil {
		e.close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, e.store, runtimeConfig(), string(e.preset))
	e.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
