package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/jumper"
	"github.com/vovakirdan/dungeon-jump/internal/platform/tui"
	"github.com/vovakirdan/dungeon-jump/internal/prefs"
	"github.com/vovakirdan/dungeon-jump/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCharacter  string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dungeon Jump",
	Long: `Start climbing. Without --character a menu lets you pick a hero and
difficulty; your last choice is remembered.

Controls:
  Left/Right, A/D  - Walk (wraps around the screen edges)
  Space/Up/W       - Jump, or double jump with a blue potion
  Mouse click      - Throw a fireball at the clicked spot (red potion)
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back to the menu (paused or after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Few demons, slow fireballs
  medium  - The classic climb
  hard    - Demons everywhere, fast fireballs

Examples:
  jumper play
  jumper play --character wizard_f
  jumper play --difficulty hard --name ada
  jumper play --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Hero to play (see 'jumper characters')")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name for the leaderboard")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// A nil manager neither loads nor saves, so play goes on without it.
	mgr, err := prefs.Open(prefs.AppName)
	if err != nil {
		logger.Warn("preferences unavailable", "error", err)
	}
	saved, err := mgr.Load()
	if err != nil {
		logger.Warn("cannot load preferences", "error", err)
	}
	last := prefs.Prefs{
		Character:  flagCharacter,
		Difficulty: flagDifficulty,
		Name:       flagName,
	}.Merge(saved).Merge(prefs.Prefs{Name: os.Getenv("USER")})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.Options{Name: last.Name, Prefs: mgr}
	return play(cmd.Flags().Changed("character"), store, gameCfg, last, opts)
}

// play starts a run straight away when the hero was chosen on the command
// line, and goes through the menu otherwise.
func play(direct bool, store *storage.Store, gameCfg config.Config, last prefs.Prefs, opts tui.Options) error {
	cfg := runtimeConfig()
	if !direct {
		return tui.RunSession(store, gameCfg, cfg, last, opts)
	}

	difficulty := config.DifficultyMedium
	if last.Difficulty != "" {
		d, err := config.ParseDifficulty(last.Difficulty)
		if err != nil {
			return err
		}
		difficulty = d
	}

	game, err := jumper.New(gameCfg, difficulty, last.Character)
	if err != nil {
		return err
	}
	last.Difficulty = string(difficulty)

	backToMenu, err := tui.Run(game, store, cfg, opts)
	if err != nil || !backToMenu {
		return err
	}
	return tui.RunSession(store, gameCfg, cfg, last, opts)
}
