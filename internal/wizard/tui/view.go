package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/aion-dev/aion/internal/catalog"
	"github.com/aion-dev/aion/internal/config"
	"github.com/aion-dev/aion/internal/i18n"
)

// metaSource is implemented by translators that know locale metadata
type metaSource interface {
	Meta(code string) (i18n.Meta, bool)
}

// View renders the current step inside the application frame
func (m Model) View() string {
	if m.outcome != outcomeRunning {
		return ""
	}

	width, height := m.size()
	st := newStyles(m.useColors)
	inner := width - 4

	return renderContainer(
		m.useColors,
		m.renderHeader(st, inner-2),
		m.renderBody(st, inner),
		m.renderFooter(st, inner-2),
		width,
		height,
	)
}

func (m Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

func (m Model) spinnerFrame() string {
	frames := spinner.Line.Frames
	return frames[m.tick%len(frames)]
}

func (m Model) ellipsisFrame() string {
	frames := spinner.Ellipsis.Frames
	return frames[m.tick%len(frames)]
}

func (m Model) renderHeader(st styles, width int) string {
	title := st.Title.Render(m.t("app.setup_title")) + "  " + st.Subtitle.Render(m.t(m.step.titleKey()))
	if m.useAnimation {
		title += " " + st.Spinner.Render(m.spinnerFrame()+m.ellipsisFrame())
	}
	return ansi.Truncate(title, width, "…")
}

// renderProgress renders the step indicator: current step cyan, steps whose
// data is complete green, the rest red. Without colors it is "[1][2][3][4]".
func (m Model) renderProgress(st styles) string {
	var b strings.Builder
	for i := 0; i < StepCount; i++ {
		s := Step(i)
		if !m.useColors {
			fmt.Fprintf(&b, "[%d]", s.Number())
			continue
		}
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.dotStyle(st, s).Render("●"))
	}
	return b.String()
}

func (m Model) dotStyle(st styles, s Step) lipgloss.Style {
	switch {
	case s == m.step:
		return st.DotCurrent
	case m.stepComplete(s):
		return st.DotDone
	default:
		return st.DotPending
	}
}

// stepComplete reports whether the draft already holds valid data for s.
// Summary is complete when every other step is.
func (m Model) stepComplete(s Step) bool {
	switch s {
	case StepLanguage:
		return config.IsAllowedLanguage(m.draft.Language)
	case StepProvider:
		return m.draft.Provider.Kind.Valid()
	case StepModel:
		return strings.TrimSpace(m.draft.Provider.Model) != ""
	case StepSummary:
		return m.stepComplete(StepLanguage) && m.stepComplete(StepProvider) && m.stepComplete(StepModel)
	default:
		return false
	}
}

func (m Model) renderBody(st styles, width int) string {
	content := m.renderContent(st)
	helpText := m.t(m.step.helpKey())

	align := lipgloss.Left
	if ms, ok := m.tr.(metaSource); ok {
		if meta, found := ms.Meta(m.locale()); found && meta.RTL() {
			align = lipgloss.Right
		}
	}

	// Each pane adds 2 columns of border around its width
	if width < 2*MinPaneWidth+4 {
		paneWidth := width - 2
		return lipgloss.JoinVertical(lipgloss.Left,
			st.Pane.Width(paneWidth).Render(content),
			st.Pane.Width(paneWidth).Align(align).Render(m.renderHelpPane(st, helpText)),
		)
	}

	leftWidth := (width - 4) * 3 / 5
	rightWidth := width - 4 - leftWidth

	left := st.Pane.Width(leftWidth).Render(content)
	right := st.Pane.Width(rightWidth).Align(align).Render(m.renderHelpPane(st, helpText))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderHelpPane(st styles, text string) string {
	return st.PaneTitle.Render(m.t("pane.help")) + "\n\n" + st.Help.Render(text)
}

func (m Model) renderContent(st styles) string {
	switch m.step {
	case StepLanguage:
		return m.renderLanguage(st)
	case StepProvider:
		return m.renderProvider(st)
	case StepModel:
		return m.renderModel(st)
	case StepSummary:
		return m.renderSummary(st)
	default:
		return ""
	}
}

func (m Model) paneHeader(st styles, title string) string {
	return st.PaneTitle.Render(title) + "  " + m.renderProgress(st)
}

func (m Model) renderLanguage(st styles) string {
	lines := []string{m.paneHeader(st, m.t(m.step.paneKey())), ""}

	for i, lang := range m.langs {
		label := lang.Name + " (" + lang.Code + ")"
		if !lang.Supported {
			label += " · " + m.t("language.not_supported")
		}

		switch {
		case i == m.langCursor:
			lines = append(lines, st.Selected.Render("> "+label))
		case !lang.Supported:
			lines = append(lines, st.Unsupported.Render(label))
		default:
			lines = append(lines, st.Item.Render(label))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderProvider(st styles) string {
	lines := []string{m.paneHeader(st, m.t(m.step.paneKey())), ""}

	for i, kind := range m.providers {
		label := kind.DisplayName()
		if i == m.providerCursor {
			lines = append(lines, st.Selected.Render("> "+label))
		} else {
			lines = append(lines, st.Item.Render(label))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderModel(st styles) string {
	title := fmt.Sprintf("%s (%s)", m.t(m.step.paneKey()), m.draft.Provider.Kind.DisplayName())

	cursor := "█"
	if m.useAnimation && m.tick%2 == 1 {
		cursor = " "
	}

	lines := []string{
		m.paneHeader(st, title),
		"",
		m.t("model.prompt"),
		"",
		"> " + st.Input.Render(string(m.modelInput)) + cursor,
		"",
		st.Help.Render(m.t("model.keys")),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSummary(st styles) string {
	lines := []string{m.paneHeader(st, m.t(m.step.paneKey())), ""}

	row := func(labelKey, value string) {
		lines = append(lines, st.Label.Render(m.t(labelKey)+":")+" "+value)
	}

	lang := m.draft.Language
	for _, l := range catalog.Languages() {
		if l.Code == lang {
			lang = l.Name + " (" + l.Code + ")"
			break
		}
	}

	row("summary.language", lang)
	row("summary.provider", m.draft.Provider.Kind.DisplayName())
	row("summary.model", m.draft.Provider.Model)
	if m.draft.Provider.BaseURL != "" {
		row("summary.base_url", m.draft.Provider.BaseURL)
	}
	if m.draft.Provider.APIKeyEnv != "" {
		row("summary.api_key_env", m.draft.Provider.APIKeyEnv)
	}

	lines = append(lines, "", m.t("summary.save"), m.t("summary.back"))
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter(st styles, width int) string {
	status := m.status
	if m.useAnimation {
		status = st.Spinner.Render(m.spinnerFrame()) + " " + status
	}
	status = ansi.Truncate(st.Status.Render(status), width, "…")

	h := m.help
	h.Width = width
	if !m.useColors {
		h.Styles = help.Styles{}
	}

	var keys help.KeyMap = m.keys
	if m.step == StepModel {
		keys = m.inputKeys
	}

	return status + "\n" + h.View(keys)
}
