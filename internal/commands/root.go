// Package commands provides CLI commands for fitdeck.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rodrigo/fitdeck/internal/coach"
	"github.com/rodrigo/fitdeck/internal/config"
	"github.com/rodrigo/fitdeck/internal/render"
	"github.com/rodrigo/fitdeck/internal/tui"
)

var (
	// Global flags
	modelFlag  string
	outputFlag string
	fileFlag   string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fitdeck [prompt]",
	Short: "Terminal fitness companion with an AI coach",
	Long: `fitdeck is a terminal fitness companion. It tracks your daily stats,
browses a workout library and puts an AI coach one keystroke away.

Run it without arguments for the full-screen app, or pass a prompt to
ask the coach a single question from the shell.

Examples:
  fitdeck                               Start the full-screen app
  fitdeck "give me a leg workout"       Ask the coach a single question
  fitdeck -f questions.md               Read prompt from file
  cat notes.md | fitdeck                Read prompt from stdin
  fitdeck "warmup ideas" -o plan.md     Save the reply to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("fitdeck %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runAsk(string(data))
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runAsk(string(data))
		}

		if len(args) > 0 {
			return runAsk(args[0])
		}

		return runApp()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-2.5-flash)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(configCmd)
}

// runApp builds the coach client and starts the full-screen TUI
func runApp() error {
	apiKey, err := config.LoadAPIKey()
	if err != nil {
		return fmt.Errorf("%w\n\nSet %s in your environment or a .env file", err, config.APIKeyEnvVar)
	}

	cfg, _ := config.LoadConfig()
	if render.SetTUITheme(cfg.TUITheme) {
		tui.UpdateTheme()
	}

	modelName := getModel()

	client, err := coach.NewClient(context.Background(), apiKey, coach.WithModel(modelName))
	if err != nil {
		return fmt.Errorf("failed to create coach client: %w", err)
	}
	defer client.Close()

	return tui.RunApp(client, modelName)
}

// getModel returns the model to use (from flag or config)
func getModel() string {
	if modelFlag != "" {
		return modelFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return coach.DefaultModel
	}

	return cfg.DefaultModel
}
