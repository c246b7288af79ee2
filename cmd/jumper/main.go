// jumper is an endless dungeon climber for the terminal.
//
// Usage:
//
//	jumper play              - Pick a hero and climb
//	jumper scores            - Show, import or export high scores
//	jumper characters        - List playable heroes
//	jumper serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.dungeon-jump/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dungeon-jump/internal/core"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger reports problems that don't stop the command.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "jumper",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "jumper",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Dungeon Jump - climb an endless dungeon in your terminal",
	Long: `Dungeon Jump is an endless vertical climber. Hop from ledge to ledge,
dodge demons and their fireballs, grab potions, and see how high you get.

Available commands:
  play        - Pick a hero and start climbing
  scores      - View, import or export high scores
  characters  - List playable heroes
  serve       - Start SSH server for remote play

Examples:
  jumper play
  jumper play --character elf_f --difficulty hard
  jumper scores --difficulty easy
  jumper serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dungeon-jump/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
