package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-dev/aion/internal/config"
	"github.com/aion-dev/aion/internal/i18n"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func assertMaxWidth(t *testing.T, s string, width int) {
	t.Helper()
	for _, line := range strings.Split(s, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), width, "line too wide: %q", line)
	}
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, clampWidth(10))
	assert.Equal(t, 80, clampWidth(80))
	assert.Equal(t, MaxContentWidth, clampWidth(300))
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("aion configuration", "Config file: /tmp/aion.yaml", []Field{
		{Key: "Provider", Value: "Ollama"},
		{Key: "Model", Value: "mistral"},
	}).SetWidth(70)

	out := plain(h.Render())
	assert.Contains(t, out, "AION CONFIGURATION")
	assert.Contains(t, out, "Config file: /tmp/aion.yaml")
	assert.Contains(t, out, "Provider: Ollama")
	assert.Contains(t, out, "Model:    mistral", "values align on the longest key")
	assert.Less(t, strings.Index(out, "Provider"), strings.Index(out, "Model"), "fields keep their order")
	assertMaxWidth(t, out, 70)
}

func TestHeaderWithoutFields(t *testing.T) {
	out := plain(NewHeader("title", "", nil).SetWidth(60).Render())
	assert.Contains(t, out, "TITLE")
	assert.Len(t, strings.Split(out, "\n"), 3, "no divider without fields")
	assert.Equal(t, out, plain(NewHeader("title", "", nil).SetWidth(60).String()))
}

func TestResultRender(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := NewSuccessResult("Configuration saved", nil).
			AddDetail("Config file", "/tmp/config.yaml").
			SetWidth(80)

		out := plain(r.Render())
		assert.Contains(t, out, "✓  SUCCESS  ─  Configuration saved")
		assert.Contains(t, out, "Config file:")
		assert.Contains(t, out, "/tmp/config.yaml")
		assertMaxWidth(t, out, 80)
	})

	t.Run("failure", func(t *testing.T) {
		r := NewFailureResult("Setup failed", errors.New("stdin is not a terminal"),
			[]string{"Run aion in an interactive terminal"}).SetWidth(80)

		out := plain(r.String())
		assert.Contains(t, out, "✗  FAILED  ─  Setup failed")
		assert.Contains(t, out, "Error: stdin is not a terminal")
		assert.Contains(t, out, "Troubleshooting:")
		assert.Contains(t, out, "• Run aion in an interactive terminal")
		assertMaxWidth(t, out, 80)
	})

	t.Run("warning", func(t *testing.T) {
		out := plain(NewWarningResult("Using defaults", []Field{{Key: "Reason", Value: "missing"}}).SetWidth(60).Render())
		assert.Contains(t, out, "⚠  WARNING  ─  Using defaults")
		assert.Contains(t, out, "missing")
	})
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(72)
	assert.Equal(t, 72, p.Width())

	p.PrintHeader("Title", "sub", []Field{{Key: "k", Value: "v"}})
	p.PrintSuccess("done", nil)
	p.PrintWarning("careful", nil)
	p.PrintError("broken", errors.New("boom"), nil)

	out := plain(buf.String())
	for _, s := range []string{"TITLE", "SUCCESS  ─  done", "WARNING  ─  careful", "FAILED  ─  broken", "Error: boom"} {
		assert.Contains(t, out, s)
	}
	assertMaxWidth(t, out, 72)

	assert.Equal(t, MinTerminalWidth, NewPrinter(nil).SetWidth(1).Width())
}

func TestConfirm(t *testing.T) {
	c := Confirmation{
		Title:     "Reset configuration",
		Warnings:  []string{"config.yaml will be overwritten"},
		Prompt:    `Type "yes": `,
		Token:     "yes",
		Cancelled: "Reset aborted",
	}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exact token", "yes\n", true},
		{"surrounding space", "  yes  \r\n", true},
		{"token at eof", "yes", true},
		{"wrong answer", "y\n", false},
		{"case matters", "YES\n", false},
		{"empty input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := NewPrinter(&buf).SetWidth(80).Confirm(strings.NewReader(tt.input), c)
			assert.Equal(t, tt.want, got)

			out := plain(buf.String())
			assert.Contains(t, out, "Reset configuration")
			assert.Contains(t, out, "• config.yaml will be overwritten")
			assert.Contains(t, out, `Type "yes":`)
			if tt.want || tt.input == "" {
				assert.NotContains(t, out, "Reset aborted")
			} else {
				assert.Contains(t, out, "Reset aborted")
			}
		})
	}
}

func TestLocale(t *testing.T) {
	cfg := config.Defaults()
	assert.Equal(t, "en", Locale(cfg))

	cfg.Language = "ar"
	assert.Equal(t, "ar", Locale(cfg))

	cfg.Language = "fr"
	assert.Equal(t, i18n.FallbackLocale, Locale(cfg))
}

func TestConfigSummary(t *testing.T) {
	tr := i18n.Bundled()

	t.Run("defaults", func(t *testing.T) {
		h := ConfigSummary(config.Defaults(), "/home/u/.config/aion/config.yaml", tr)
		require.NotNil(t, h)

		assert.Equal(t, "AION configuration", h.Title)
		assert.Equal(t, "Config file: /home/u/.config/aion/config.yaml", h.Subtitle)

		got := map[string]string{}
		var keys []string
		for _, f := range h.Fields {
			got[f.Key] = f.Value
			keys = append(keys, f.Key)
		}
		assert.Equal(t, []string{
			"Language", "Provider", "Model", "Base URL",
			"UI mode", "Features", "Capabilities",
		}, keys, "api key env is omitted for ollama")

		assert.Equal(t, "English (en)", got["Language"])
		assert.Equal(t, "Ollama", got["Provider"])
		assert.Equal(t, "mistral", got["Model"])
		assert.Equal(t, "http://localhost:11434", got["Base URL"])
		assert.Equal(t, "tui", got["UI mode"])
		assert.Equal(t, "system_scan, web_in_terminal, command_suggestions, safe_execute", got["Features"])
		assert.Equal(t, "read_files, network", got["Capabilities"])
	})

	t.Run("arabic openai", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Language = "ar"
		cfg.ApplyProviderDefaults(config.ProviderOpenAI)
		cfg.Caps = config.Capabilities{}

		h := ConfigSummary(cfg, "", tr)
		assert.Equal(t, tr.T("ar", "cli.summary_title"), h.Title)
		assert.Empty(t, h.Subtitle)

		last := h.Fields[len(h.Fields)-1]
		assert.Equal(t, tr.T("ar", "cli.capabilities"), last.Key)
		assert.Equal(t, "-", last.Value)

		var apiKey string
		for _, f := range h.Fields {
			if f.Key == tr.T("ar", "summary.api_key_env") {
				apiKey = f.Value
			}
			assert.NotEqual(t, tr.T("ar", "summary.base_url"), f.Key, "openai has no base url")
		}
		assert.Equal(t, "OPENAI_API_KEY", apiKey)
	})
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, "العربية (ar)", languageLabel("ar"))
	assert.Equal(t, "xx", languageLabel("xx"))
}
