package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/aion-dev/aion/internal/config"
	"github.com/aion-dev/aion/internal/i18n"
	"github.com/aion-dev/aion/internal/logging"
	"github.com/aion-dev/aion/internal/ui"
	"github.com/aion-dev/aion/internal/urls"
	"github.com/aion-dev/aion/internal/wizard/tui"
)

var (
	showFlags struct {
		format string
	}
	resetFlags struct {
		yes bool
	}
)

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)

	configShowCmd.Flags().StringVar(&showFlags.format, "format", "summary", "Output format (summary, yaml)")
	configResetCmd.Flags().BoolVarP(&resetFlags.yes, "yes", "y", false, "Reset without asking for confirmation")
}

// setupCmd launches the interactive setup wizard
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the interactive setup wizard",
	Long: `Run the interactive setup wizard.

The wizard walks through four steps: interface language, AI provider,
model name and a final summary. Pressing Enter on the summary saves the
configuration; q, ctrl+c or going back from the first step exits without
saving.`,
	Example: `  # Run the wizard
  aion setup

  # Edit a specific config file
  aion setup --config ./aion.yaml

  # Capture a debug log of the session
  aion setup --log-level debug --log-file /tmp/aion.log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(cmd)
	},
}

func runRoot(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	// First run: nothing to show yet
	if rootFlags.setup || !store.Exists() {
		return runSetup(cmd)
	}

	return showSummary(cmd, store)
}

func runSetup(cmd *cobra.Command) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	tr := loadTranslator()
	log := logging.Named("setup")

	existing, err := store.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := []tui.Option{
		tui.WithTranslator(tr),
		tui.WithLogger(logging.Named("wizard")),
		tui.WithOutput(cmd.OutOrStdout()),
	}
	// Scripted input (tests, demos) replaces the terminal
	if in := cmd.InOrStdin(); in != io.Reader(os.Stdin) {
		opts = append(opts, tui.WithInput(in))
	}

	p := ui.NewPrinter(cmd.OutOrStdout())

	cfg, err := tui.Run(cmd.Context(), existing, opts...)
	if err != nil {
		if tui.IsCancelled(err) {
			log.Info("Setup cancelled", zap.Error(err))
			p.Println(ui.HeaderSubtitleStyle.Render(tr.T(ui.Locale(existing), "cli.cancelled")))
			return nil
		}
		log.Error("Setup failed", zap.Error(err))
		p.PrintError("Setup failed", err, hintLines(tui.TroubleshootingHint(err)))
		return errReported
	}

	if err := store.Save(cfg); err != nil {
		log.Error("Failed to save config", zap.Error(err))
		p.PrintError(tr.T(ui.Locale(cfg), "cli.invalid"), err, nil)
		return errReported
	}

	locale := ui.Locale(cfg)
	p.PrintSuccess(tr.T(locale, "cli.saved"), []ui.Field{
		{Key: tr.T(locale, "cli.config_path"), Value: store.Path()},
	})
	p.Println(ui.ConfigSummary(cfg, "", tr).SetWidth(p.Width()).Render())
	return nil
}

// configCmd groups commands that inspect the configuration file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration file",
	Long: `Inspect, validate or reset the aion configuration file.

Values can be overridden through AION_* environment variables, e.g.
AION_LANGUAGE=ar or AION_PROVIDER_MODEL=llama3. Overrides are applied
when the file is read; they are never written back.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Example: `  # Summary box
  aion config show

  # Raw YAML for scripting
  aion config show --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		switch showFlags.format {
		case "summary":
			return showSummary(cmd, store)
		case "yaml":
			cfg, err := loadExisting(store)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal YAML: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		default:
			return fmt.Errorf("unknown format %q (use summary or yaml)", showFlags.format)
		}
	},
}

func showSummary(cmd *cobra.Command, store *config.Store) error {
	cfg, err := loadExisting(store)
	if err != nil {
		return err
	}
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Println(ui.ConfigSummary(cfg, store.Path(), loadTranslator()).SetWidth(p.Width()).Render())
	return nil
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration file",
	Long: `Load the configuration file, apply AION_* overrides and validate the result.

Exits with a non-zero status when the file is missing, unreadable or invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		tr := loadTranslator()
		p := ui.NewPrinter(cmd.OutOrStdout())

		cfg, err := store.Load()
		if err != nil {
			p.PrintError(tr.T(i18n.FallbackLocale, "cli.invalid"), err, validationHints(err))
			return errReported
		}

		locale := ui.Locale(cfg)
		p.PrintSuccess(tr.T(locale, "cli.valid"), []ui.Field{
			{Key: tr.T(locale, "cli.config_path"), Value: store.Path()},
		})

		if env := cfg.Provider.APIKeyEnv; env != "" && os.Getenv(env) == "" {
			p.PrintWarning(tr.T(locale, "cli.api_key_missing"), []ui.Field{
				{Key: tr.T(locale, "cli.variable"), Value: env},
				{Key: tr.T(locale, "cli.get_key"), Value: urls.ForProvider(cfg.Provider.Kind)},
			})
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), store.Path())
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the configuration with defaults",
	Example: `  # Ask before overwriting
  aion config reset

  # Non-interactive
  aion config reset --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		tr := loadTranslator()
		p := ui.NewPrinter(cmd.OutOrStdout())

		locale := i18n.FallbackLocale
		if cfg, err := store.Load(); err == nil {
			locale = ui.Locale(cfg)
		}
		t := func(key string) string { return tr.T(locale, key) }

		if !resetFlags.yes {
			ok := p.Confirm(cmd.InOrStdin(), ui.Confirmation{
				Title:     t("cli.reset_title"),
				Warnings:  []string{fmt.Sprintf(t("cli.reset_warning"), store.Path())},
				Prompt:    t("cli.reset_prompt"),
				Token:     t("cli.reset_token"),
				Cancelled: t("cli.reset_aborted"),
			})
			if !ok {
				return nil
			}
		}

		if err := store.Save(config.Defaults()); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}
		logging.LogConfigEvent(logging.Named("setup"), store.Path(), "reset")

		locale = ui.Locale(config.Defaults())
		p.PrintSuccess(tr.T(locale, "cli.reset_done"), []ui.Field{
			{Key: tr.T(locale, "cli.config_path"), Value: store.Path()},
		})
		return nil
	},
}

func openStore() (*config.Store, error) {
	store, err := config.NewStore(rootFlags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	return store, nil
}

// loadExisting loads the configuration without creating it
func loadExisting(store *config.Store) (config.Config, error) {
	cfg, err := store.Load()
	if errors.Is(err, config.ErrNotFound) {
		return config.Config{}, fmt.Errorf("%w\n\nRun 'aion setup' to create it", err)
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadTranslator loads bundled locales plus any locale directories found on
// disk. A broken locale directory falls back to the bundled set.
func loadTranslator() *i18n.Manager {
	tr, err := i18n.New(i18n.SearchPaths()...)
	if err != nil {
		logging.Warn("Failed to load locale files, using bundled locales", zap.Error(err))
		return i18n.Bundled()
	}
	logging.Debug("Loaded locales", zap.Strings("locales", tr.AvailableLocales()))
	return tr
}

// hintLines turns a troubleshooting hint into bullet items
func hintLines(hint string) []string {
	var lines []string
	for _, line := range strings.Split(hint, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "• ")
		if line == "" || line == "Troubleshooting:" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func providerNames() []string {
	kinds := config.ProviderKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func validationHints(err error) []string {
	switch {
	case errors.Is(err, config.ErrNotFound):
		return []string{"Run 'aion setup' to create the configuration file"}
	case config.IsValidationError(err):
		hints := []string{
			"Run 'aion setup' to choose valid settings",
			"Check AION_* environment variables, they override the file",
		}
		switch {
		case errors.Is(err, config.ErrInvalidLanguage):
			hints = append(hints, "Supported languages: "+strings.Join(config.AllowedLanguages(), ", "))
		case errors.Is(err, config.ErrUnknownProvider):
			hints = append(hints, "Supported providers: "+strings.Join(providerNames(), ", "))
		}
		return hints
	default:
		return []string{
			"The file could not be parsed as YAML",
			"Run 'aion config reset' to start from the defaults",
		}
	}
}
