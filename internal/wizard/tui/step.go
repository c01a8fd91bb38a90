package tui

import "fmt"

// Step is one screen of the setup wizard.
// Steps are strictly linear: Language, Provider, Model, Summary.
type Step int

const (
	StepLanguage Step = iota
	StepProvider
	StepModel
	StepSummary
)

// StepCount is the number of wizard steps
const StepCount = 4

// Next returns the following step. ok is false at StepSummary.
func (s Step) Next() (next Step, ok bool) {
	if s < StepLanguage || s >= StepSummary {
		return s, false
	}
	return s + 1, true
}

// Prev returns the preceding step. ok is false at StepLanguage.
func (s Step) Prev() (prev Step, ok bool) {
	if s <= StepLanguage || s > StepSummary {
		return s, false
	}
	return s - 1, true
}

// Number returns the 1-based position of the step
func (s Step) Number() int {
	return int(s) + 1
}

// String returns the step name used in logs
func (s Step) String() string {
	switch s {
	case StepLanguage:
		return "language"
	case StepProvider:
		return "provider"
	case StepModel:
		return "model"
	case StepSummary:
		return "summary"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// titleKey is the translation key of the "Step n/4: Name" title
func (s Step) titleKey() string {
	return "step." + s.String()
}

// paneKey is the translation key of the content pane title
func (s Step) paneKey() string {
	return "pane." + s.String()
}

// helpKey is the translation key of the help pane text
func (s Step) helpKey() string {
	return "help." + s.String()
}
