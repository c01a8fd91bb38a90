package tui

import (
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aion-dev/aion/internal/logging"
)

// handleKey dispatches a key press: global keys first, then back keys, then
// the current step. The model step owns printable keys, see handleModelInput.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.step == StepModel {
		return m.handleModelInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Colors):
		m.useColors = !m.useColors
		m.status = m.toggleStatus()
		return m, nil

	case key.Matches(msg, m.keys.Animation):
		m.useAnimation = !m.useAnimation
		m.lastTick = time.Time{}
		m.status = m.toggleStatus()
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m.cancel(msg.String())

	case key.Matches(msg, m.keys.Back):
		return m.back()
	}

	switch m.step {
	case StepLanguage:
		return m.updateLanguage(msg)
	case StepProvider:
		return m.updateProvider(msg)
	case StepSummary:
		return m.updateSummary(msg)
	}

	return m, nil
}

func (m Model) updateLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.langCursor > 0 {
			m.langCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.langCursor < len(m.langs)-1 {
			m.langCursor++
		}

	case key.Matches(msg, m.keys.Enter):
		lang := m.langs[m.langCursor]
		if !lang.Supported {
			m.log.Debug("Unsupported language rejected", zap.String("code", lang.Code))
			m.status = m.t("status.language_unsupported")
			return m, nil
		}
		m.draft.Language = lang.Code
		m.status = m.t("status.language_selected")
		return m.advance(), nil
	}

	return m, nil
}

func (m Model) updateProvider(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.providerCursor > 0 {
			m.providerCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.providerCursor < len(m.providers)-1 {
			m.providerCursor++
		}

	case key.Matches(msg, m.keys.Enter):
		m.draft.ApplyProviderDefaults(m.providers[m.providerCursor])
		m.modelInput = []rune(m.draft.Provider.Model)
		m.committedModel = m.draft.Provider.Model
		m.status = m.t("status.provider_selected")
		return m.advance(), nil
	}

	return m, nil
}

// handleModelInput edits the model name. Printable keys, including the
// letters bound to global actions on other steps, are typed into the field.
func (m Model) handleModelInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Quit):
		return m.cancel(msg.String())

	case key.Matches(msg, m.inputKeys.Back):
		return m.back()

	case key.Matches(msg, m.inputKeys.Enter):
		value := strings.TrimSpace(string(m.modelInput))
		if value == "" {
			m.draft.Provider.Model = m.committedModel
			m.status = m.t("status.model_empty")
			return m, nil
		}
		m.draft.Provider.Model = value
		m.committedModel = value
		m.modelInput = []rune(value)
		m.status = m.t("status.model_selected")
		return m.advance(), nil

	case key.Matches(msg, m.inputKeys.Delete):
		if len(m.modelInput) > 0 {
			m.modelInput = m.modelInput[:len(m.modelInput)-1]
		}
		m.draft.Provider.Model = string(m.modelInput)
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			m.modelInput = append(m.modelInput, r)
		}
		m.draft.Provider.Model = string(m.modelInput)
	}

	return m, nil
}

func (m Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Enter) {
		return m, nil
	}

	if err := m.draft.Validate(); err != nil {
		m.log.Warn("Final configuration rejected", zap.Error(err))
		m.outcome = outcomeFailed
		m.err = newValidationError(err)
		return m, tea.Quit
	}

	m.log.Info("Wizard completed",
		zap.String("language", m.draft.Language),
		zap.String("provider", string(m.draft.Provider.Kind)),
		zap.String("model", m.draft.Provider.Model),
	)
	m.outcome = outcomeDone
	return m, tea.Quit
}

// advance moves to the next step, if any
func (m Model) advance() Model {
	next, ok := m.step.Next()
	if !ok {
		return m
	}
	logging.LogStepTransition(m.log, m.step.String(), next.String())
	m.step = next
	return m
}

// back moves to the previous step. Going back from the first step cancels.
func (m Model) back() (tea.Model, tea.Cmd) {
	prev, ok := m.step.Prev()
	if !ok {
		return m.cancel("back")
	}

	if m.step == StepModel && strings.TrimSpace(string(m.modelInput)) == "" {
		m.draft.Provider.Model = m.committedModel
		m.modelInput = []rune(m.committedModel)
	}

	logging.LogStepTransition(m.log, m.step.String(), prev.String())
	m.step = prev
	m.status = m.t("status.back")
	return m, nil
}

func (m Model) cancel(reason string) (tea.Model, tea.Cmd) {
	m.log.Info("Wizard cancelled", zap.String("step", m.step.String()), zap.String("reason", reason))
	m.outcome = outcomeCancelled
	m.err = newCancelledError(reason)
	return m, tea.Quit
}
