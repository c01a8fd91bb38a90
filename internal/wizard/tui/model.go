package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aion-dev/aion/internal/catalog"
	"github.com/aion-dev/aion/internal/config"
	"github.com/aion-dev/aion/internal/i18n"
	"github.com/aion-dev/aion/internal/logging"
)

const (
	// frameInterval bounds how long the wizard waits between redraws
	frameInterval = 60 * time.Millisecond
	// tickInterval is the animation speed
	tickInterval = 90 * time.Millisecond
)

// frameMsg drives redraws and the animation clock
type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type outcome int

const (
	outcomeRunning outcome = iota
	outcomeDone
	outcomeCancelled
	outcomeFailed
)

// Model is the state of one wizard session. It starts from a copy of the
// caller's configuration, which it never modifies.
type Model struct {
	step  Step
	draft config.Config

	langs          []catalog.Language
	providers      []config.ProviderKind
	langCursor     int
	providerCursor int

	modelInput     []rune
	committedModel string // Last non-blank model, restored when the input is left blank

	useColors    bool
	useAnimation bool
	tick         int
	lastTick     time.Time

	status string
	width  int
	height int

	tr        i18n.Translator
	keys      keyMap
	inputKeys inputKeyMap
	help      help.Model
	log       *zap.Logger

	outcome outcome
	err     error
}

// NewModel creates a wizard session positioned on the language step.
// A nil translator selects the bundled locales; a nil logger selects the
// global logger.
func NewModel(existing config.Config, tr i18n.Translator, log *zap.Logger) Model {
	if tr == nil {
		tr = i18n.Bundled()
	}
	if log == nil {
		log = logging.Named("wizard")
	}

	m := Model{
		step:           StepLanguage,
		draft:          existing.Clone(),
		langs:          catalog.Languages(),
		providers:      catalog.Providers(),
		langCursor:     catalog.IndexOfLanguage(existing.Language),
		providerCursor: catalog.IndexOfProvider(existing.Provider.Kind),
		modelInput:     []rune(existing.Provider.Model),
		committedModel: existing.Provider.Model,
		useColors:      true,
		useAnimation:   true,
		tr:             tr,
		keys:           newKeyMap(),
		inputKeys:      newInputKeyMap(),
		help:           help.New(),
		log:            log,
	}
	m.status = m.t("status.initial")
	return m
}

// Init starts the frame clock
func (m Model) Init() tea.Cmd {
	return frame()
}

// Update handles all messages and routes key presses to the current step
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.outcome != outcomeRunning {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case frameMsg:
		m = m.advanceAnimation(time.Time(msg))
		return m, frame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// Result returns the finished configuration, or the error that ended the session
func (m Model) Result() (config.Config, error) {
	switch m.outcome {
	case outcomeDone:
		return m.draft, nil
	case outcomeCancelled:
		return config.Config{}, m.err
	case outcomeFailed:
		return config.Config{}, m.err
	default:
		return config.Config{}, newTerminalIOError("wizard ended without a result", nil)
	}
}

// Done reports whether the session has finished
func (m Model) Done() bool {
	return m.outcome != outcomeRunning
}

// advanceAnimation bumps the tick counter once per tickInterval while
// animation is enabled
func (m Model) advanceAnimation(now time.Time) Model {
	if !m.useAnimation {
		return m
	}
	if m.lastTick.IsZero() {
		m.lastTick = now
		return m
	}
	if now.Sub(m.lastTick) >= tickInterval {
		m.tick++
		m.lastTick = now
	}
	return m
}

// locale is the UI language: the draft language once it is a supported one
func (m Model) locale() string {
	if config.IsAllowedLanguage(m.draft.Language) {
		return m.draft.Language
	}
	return i18n.FallbackLocale
}

func (m Model) t(key string) string {
	return m.tr.T(m.locale(), key)
}

func (m Model) toggleStatus() string {
	return fmt.Sprintf(m.t("status.toggles"), m.onOff(m.useColors), m.onOff(m.useAnimation))
}

func (m Model) onOff(v bool) string {
	if v {
		return m.t("status.on")
	}
	return m.t("status.off")
}
