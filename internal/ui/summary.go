package ui

import (
	"fmt"
	"strings"

	"github.com/aion-dev/aion/internal/catalog"
	"github.com/aion-dev/aion/internal/config"
	"github.com/aion-dev/aion/internal/i18n"
)

// Locale returns the UI locale for cfg: its language when supported,
// otherwise the fallback locale.
func Locale(cfg config.Config) string {
	if config.IsAllowedLanguage(cfg.Language) {
		return cfg.Language
	}
	return i18n.FallbackLocale
}

// ConfigSummary builds the header shown by "aion config show" and after setup.
// Base URL and API key env lines are omitted when unset.
func ConfigSummary(cfg config.Config, path string, tr i18n.Translator) *Header {
	locale := Locale(cfg)
	t := func(key string) string { return tr.T(locale, key) }

	fields := []Field{
		{Key: t("summary.language"), Value: languageLabel(cfg.Language)},
		{Key: t("summary.provider"), Value: cfg.Provider.Kind.DisplayName()},
		{Key: t("summary.model"), Value: cfg.Provider.Model},
	}
	if cfg.Provider.BaseURL != "" {
		fields = append(fields, Field{Key: t("summary.base_url"), Value: cfg.Provider.BaseURL})
	}
	if cfg.Provider.APIKeyEnv != "" {
		fields = append(fields, Field{Key: t("summary.api_key_env"), Value: cfg.Provider.APIKeyEnv})
	}
	fields = append(fields,
		Field{Key: t("cli.ui_mode"), Value: string(cfg.UIMode)},
		Field{Key: t("cli.features"), Value: enabledList(
			flag{"system_scan", cfg.Features.SystemScan},
			flag{"web_in_terminal", cfg.Features.WebInTerminal},
			flag{"command_suggestions", cfg.Features.CommandSuggestions},
			flag{"safe_execute", cfg.Features.SafeExecute},
		)},
		Field{Key: t("cli.capabilities"), Value: enabledList(
			flag{"read_files", cfg.Caps.ReadFiles},
			flag{"write_files", cfg.Caps.WriteFiles},
			flag{"network", cfg.Caps.Network},
			flag{"run_commands", cfg.Caps.RunCommands},
		)},
	)

	subtitle := ""
	if path != "" {
		subtitle = fmt.Sprintf("%s: %s", t("cli.config_path"), path)
	}
	return NewHeader(t("cli.summary_title"), subtitle, fields)
}

func languageLabel(code string) string {
	for _, l := range catalog.Languages() {
		if l.Code == code {
			return fmt.Sprintf("%s (%s)", l.Name, l.Code)
		}
	}
	return code
}

type flag struct {
	name string
	on   bool
}

// enabledList joins the names of enabled flags, or "-" when none are.
func enabledList(flags ...flag) string {
	var names []string
	for _, f := range flags {
		if f.on {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
