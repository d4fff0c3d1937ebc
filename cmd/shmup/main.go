// shmup is a terminal shoot-'em-up: fly a ship through endless waves of
// enemies, collect power-ups and chase the high score.
//
// Usage:
//
//	shmup play              - Play immediately
//	shmup menu              - Title menu with difficulty picker and scoreboard
//	shmup serve             - Start SSH server for remote play
//	shmup scores            - Show the best runs
//	shmup list              - List registered games
//	shmup config            - Print or check the game configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--db <path>             - Set database path (default: ~/.arcade/shmup.db)
//	--config <path>         - Use a custom config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--sound                 - Play sound effects on the local audio device
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shmup",
	Short: "Shoot 'em Up - a terminal arcade shooter",
	Long: `Shoot 'em Up is a wave-based space shooter for the terminal.

Available commands:
  play     - Play a game directly
  menu     - Title menu with difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games
  config   - Print or check the configuration

Examples:
  shmup play
  shmup play --difficulty hard --sound
  shmup menu
  shmup serve --ssh :2222
  shmup scores --mode hard`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagSound, "sound", false, "Play sound effects")
	pf.Float64Var(&flagVolume, "volume", 0.8, "Sound volume from 0 to 1")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the TUI is running")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
