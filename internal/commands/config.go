package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rodrigo/fitdeck/internal/config"
	"github.com/rodrigo/fitdeck/internal/render"
)

// configCmd shows and edits fitdeck settings
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show the current configuration, or change a setting with
'fitdeck config set <key> <value>'.

Keys:
  model       Default model name
  theme       TUI color theme (` + strings.Join(render.TUIThemeNames(), ", ") + `)
  clipboard   Copy one-shot replies to the clipboard (true/false)
  style       Markdown render style (dark, light, notty, ...)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("model       %s\n", cfg.DefaultModel)
		fmt.Printf("theme       %s\n", cfg.TUITheme)
		fmt.Printf("clipboard   %t\n", cfg.CopyToClipboard)
		fmt.Printf("style       %s\n", cfg.Markdown.Style)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		key, value := args[0], args[1]
		switch key {
		case "model":
			cfg.DefaultModel = value
		case "theme":
			if _, ok := render.GetTUIThemeByName(value); !ok {
				return fmt.Errorf("unknown theme %q (available: %s)",
					value, strings.Join(render.TUIThemeNames(), ", "))
			}
			cfg.TUITheme = value
		case "clipboard":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("clipboard must be true or false, got %q", value)
			}
			cfg.CopyToClipboard = b
		case "style":
			cfg.Markdown.Style = value
		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
