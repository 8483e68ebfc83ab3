package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/audio"
	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Simon.

Watch the colors light up, then repeat them in order. Keys only count
when released, and only while the game waits for your answer.

Default controls:
  Q W A S    - Green, Red, Yellow, Blue
  R          - Start or restart
  ,          - Settings dialog
  Ctrl+C     - Quit

Difficulty options:
  easy   - Slower timings (x1.5)
  normal - Stored timings
  hard   - Faster timings (x0.6)

Examples:
  simon play
  simon play --difficulty easy
  simon play --mute
  simon play --config ./my-simon.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a settings YAML used for this session instead of the stored settings")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		log.Warn("running without storage", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	settings, err := loadPlaySettings(store)
	if err != nil {
		return err
	}

	var player simon.Audio = audio.Silent{}
	if !flagMute {
		sp, spErr := audio.NewSpeaker()
		if spErr != nil {
			log.Warn("audio unavailable, playing silently", "error", spErr)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	log.Info("starting game", "seed", flagSeed, "difficulty", preset, "db", store != nil)

	return tui.Run(tui.Config{
		Settings:    settings,
		Difficulty:  preset,
		SessionOnly: flagConfig != "",
		Seed:        flagSeed,
		Audio:       player,
		Store:       store,
		Logger:      log.Default(),
		ScreenW:     width,
		ScreenH:     height,
	})
}

// loadPlaySettings reads --config when given, the stored settings otherwise.
// Unreadable stored settings fall back to the defaults.
func loadPlaySettings(store *storage.Store) (config.Settings, error) {
	if flagConfig != "" {
		s, err := config.LoadFile(flagConfig)
		if err != nil {
			return config.Settings{}, fmt.Errorf("failed to load --config: %w", err)
		}
		return s, nil
	}
	if store == nil {
		return config.Defaults(), nil
	}
	s, err := config.LoadSettings(store)
	if err != nil {
		log.Warn("could not read stored settings", "error", err)
	}
	return s, nil
}
