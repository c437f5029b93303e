// rocketkid is a rocket arcade game for the terminal, SSH and a desktop window.
//
// Usage:
//
//	rocketkid play             - Play in the terminal
//	rocketkid play --window    - Play in a desktop window
//	rocketkid serve            - Start SSH server for remote play
//	rocketkid scores           - Show high scores
//	rocketkid settings         - Show or change settings
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible flights
//	--db <path>         - Set database path (default: ~/.rocketkid/scores.db)
//	--config <path>     - Set tuning YAML path
//	--settings <path>   - Set settings YAML path (default: ~/.rocketkid/settings.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSettings string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocketkid",
	Short: "Rocket Kid - launch a rocket, reach space, dodge and blast rocks",
	Long: `Rocket Kid is a small arcade game: hold UP through the countdown to
launch, thrust out of the atmosphere, then steer and shoot through the
obstacles of space for as long as your hull holds.

Available commands:
  play      - Play in the terminal (or a window with --window)
  serve     - Start SSH server for remote play
  scores    - View high scores
  settings  - Show or change settings

Examples:
  rocketkid play
  rocketkid play --window
  rocketkid serve --ssh :2222
  rocketkid settings set volume 4`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", config.DefaultSettingsPath(), "Path to settings YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}
