package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actionIgnored action = iota
	actionUp
	actionDown
	actionConfirm
	actionQuit
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "Quit"),
		),
	}
}

func (k keyMap) action(msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, k.Quit):
		return actionQuit
	case key.Matches(msg, k.Down):
		return actionDown
	case key.Matches(msg, k.Up):
		return actionUp
	case key.Matches(msg, k.Select):
		return actionConfirm
	default:
		return actionIgnored
	}
}

// legend renders the footer hint, e.g. "↑/k: Up | ↓/j: Down".
func (k keyMap) legend() string {
	bindings := []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " | ")
}
