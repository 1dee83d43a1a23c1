package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/settings"
)

// SettingsOptions holds flags for the settings command.
type SettingsOptions struct {
	*RootOptions
	File     string
	DarkMode bool
	FontSize int
}

// NewSettingsCommand creates the settings command.
func NewSettingsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SettingsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the persisted preferences",
		Long: `Show or change the persisted preferences.

Without flags the current preferences are printed. With --dark-mode or
--font-size the given values are written. Font sizes outside the
supported range are clamped, never rejected.

Example:
  slate settings
  slate settings --dark-mode=true
  slate settings --font-size 20`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.File, "settings-file", "", "path to settings file (default: $XDG_CONFIG_HOME/slate/settings.yaml)")
	cmd.Flags().BoolVar(&opts.DarkMode, "dark-mode", false, "enable or disable dark mode")
	cmd.Flags().IntVar(&opts.FontSize, "font-size", settings.DefaultFontSize, "list font size")

	return cmd
}

func runSettings(opts *SettingsOptions, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	path := opts.File
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to resolve settings path", err)
		}
	}

	cfg := settings.Load(path)

	darkChanged := cmd.Flags().Changed("dark-mode")
	sizeChanged := cmd.Flags().Changed("font-size")
	if !darkChanged && !sizeChanged {
		return outputSettings(formatter, cfg)
	}

	if darkChanged {
		cfg.DarkMode = opts.DarkMode
	}
	if sizeChanged {
		cfg.FontSize = opts.FontSize
	}
	cfg.Clamp()

	if err := settings.Save(path, cfg); err != nil {
		_ = formatter.Error(ErrCodeSettings, "failed to save settings", err.Error())
		return WrapExitError(ExitCommandError, "failed to save settings", err)
	}
	return outputSettings(formatter, cfg)
}

func outputSettings(formatter *OutputFormatter, cfg settings.Settings) error {
	if formatter.Format == "json" {
		return formatter.Success(cfg)
	}

	fmt.Fprintf(formatter.Writer, "darkMode: %t\n", cfg.DarkMode)
	fmt.Fprintf(formatter.Writer, "fontSize: %d\n", cfg.FontSize)
	return nil
}
