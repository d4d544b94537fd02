// Package tui provides the Charmbracelet terminal interface for the tuner:
// a lever list with live prompt preview, plus pickers for models, personas,
// and personalities.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts available in the TUI.
// It implements the help.KeyMap interface for automatic help text generation.
type KeyMap struct {
	// Up moves the lever cursor up
	Up key.Binding

	// Down moves the lever cursor down
	Down key.Binding

	// Decrease lowers the selected lever by one
	Decrease key.Binding

	// Increase raises the selected lever by one
	Increase key.Binding

	// Model opens the model picker
	Model key.Binding

	// Persona opens the persona picker
	Persona key.Binding

	// Personality opens the personality picker
	Personality key.Binding

	// Emoji toggles the emoji shutoff section
	Emoji key.Binding

	// Save opens the save-preset prompt
	Save key.Binding

	// Reset returns everything to catalog defaults
	Reset key.Binding

	// ResetLever returns the selected lever to its default
	ResetLever key.Binding

	// Help toggles the full help view
	Help key.Binding

	// Close closes the current modal
	Close key.Binding

	// Quit exits the application
	Quit key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous lever"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next lever"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Model: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "select model"),
		),
		Persona: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "select persona"),
		),
		Personality: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "select personality"),
		),
		Emoji: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "emoji shutoff"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save preset"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset all"),
		),
		ResetLever: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "reset lever"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?/f1", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns a slice of key bindings to show in the short help view.
// This implements part of the help.KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Decrease,
		k.Increase,
		k.Model,
		k.Persona,
		k.Save,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns a slice of slices of key bindings to show in the full help view.
// This implements part of the help.KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Up,
			k.Down,
			k.Decrease,
			k.Increase,
			k.ResetLever,
		},
		{
			k.Model,
			k.Persona,
			k.Personality,
			k.Emoji,
		},
		{
			k.Save,
			k.Reset,
			k.Help,
			k.Close,
			k.Quit,
		},
	}
}
