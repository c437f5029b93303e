package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rocket-kid/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the current settings",
	Long: `Print the settings file, or change one value with 'settings set'.

Keys:
  language            en | pt
  volume              0-5
  countdown           true | false
  turbine             true | false
  jet                 true | false
  auto_restart        true | false
  obstacle_collision  true | false
  shooting            true | false

Examples:
  rocketkid settings
  rocketkid settings set language pt
  rocketkid settings set shooting false
  rocketkid settings reset`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := config.LoadSettings(flagSettings)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", flagSettings, data)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSettings(flagSettings)
		if err != nil {
			return err
		}
		if err := applySetting(&s, args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveSettings(flagSettings, s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.SaveSettings(flagSettings, config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Settings reset.")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

// applySetting parses value into the field named key.
func applySetting(s *config.Settings, key, value string) error {
	switch key {
	case "language":
		lang := config.Language(strings.ToLower(value))
		for _, l := range config.Languages {
			if l == lang {
				s.Language = lang
				return nil
			}
		}
		return fmt.Errorf("unknown language %q (want en or pt)", value)
	case "volume":
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 || v > config.MaxVolume {
			return fmt.Errorf("volume must be 0-%d, got %q", config.MaxVolume, value)
		}
		s.Volume = v
		return nil
	}

	flags := map[string]*bool{
		"countdown":          &s.Sounds.Countdown,
		"turbine":            &s.Sounds.Turbine,
		"jet":                &s.Sounds.Jet,
		"auto_restart":       &s.AutoRestart,
		"obstacle_collision": &s.ObstacleCollision,
		"shooting":           &s.Shooting,
	}
	field, ok := flags[key]
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s must be true or false, got %q", key, value)
	}
	*field = b
	return nil
}
