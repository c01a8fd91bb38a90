package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines key bindings for the list and summary steps
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Quit      key.Binding
	Colors    key.Binding
	Animation key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit, k.Colors, k.Animation}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Back, k.Quit},
		{k.Colors, k.Animation},
	}
}

// inputKeyMap defines key bindings for the model text input.
// Letters are typed into the field, so only control keys are bound.
type inputKeyMap struct {
	Enter  key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding

	// Toggles is help only: c and a are typed while the field has focus
	Toggles key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Delete, k.Back, k.Quit, k.Toggles}
}

// FullHelp returns keybindings for the expanded help view
func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Delete},
		{k.Back, k.Quit},
		{k.Toggles},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "left", "b"),
			key.WithHelp("esc/←/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Colors: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "colors"),
		),
		Animation: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "animation"),
		),
	}
}

func newInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "left"),
			key.WithHelp("esc/←", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Toggles: key.NewBinding(
			key.WithKeys("c", "a"),
			key.WithHelp("c/a", "typed, toggles off"),
		),
	}
}
