package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the stored settings",
	Long: `Show, reset or import the settings used by 'simon play'.

Settings are stored in the database next to the high score. They can
also be edited in game with the settings key (default ",").`,
}

var flagShowDefaults bool

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored settings as YAML",
	Long: `Print the stored settings as YAML.

With --defaults the built-in defaults are printed instead; the output is a
valid file for 'simon settings import' or 'simon play --config'.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagShowDefaults {
			_, err := os.Stdout.Write(config.DefaultYAML())
			return err
		}
		return withStore(func(store *storage.Store) error {
			s, err := config.LoadSettings(store)
			if err != nil {
				return err
			}
			data, err := config.MarshalYAML(s)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		})
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withStore(func(store *storage.Store) error {
			if err := store.Delete(config.SettingsKey); err != nil {
				return err
			}
			log.Info("settings reset to defaults")
			fmt.Println("Settings reset to defaults.")
			return nil
		})
	},
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store settings read from a YAML file",
	Long: `Read a settings YAML file, validate it and store it.

Missing fields keep their default values.

Example:
  simon settings import ./my-simon.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := config.LoadFile(args[0])
		if err != nil {
			return err
		}
		return withStore(func(store *storage.Store) error {
			if err := config.SaveSettings(store, s); err != nil {
				return err
			}
			log.Info("settings imported", "file", args[0])
			fmt.Printf("Settings imported from %s.\n", args[0])
			return nil
		})
	},
}

func init() {
	settingsShowCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults instead of the stored settings")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsImportCmd)
}

func withStore(fn func(*storage.Store) error) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()
	return fn(store)
}
