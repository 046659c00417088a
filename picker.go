package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval bounds how long the loop sits waiting for input. Nothing
// happens when it expires.
const pollInterval = 250 * time.Millisecond

type pickerState int

const (
	stateRunning pickerState = iota
	stateConfirmed
	stateQuit
)

func (s pickerState) String() string {
	switch s {
	case stateRunning:
		return "running"
	case stateConfirmed:
		return "confirmed"
	case stateQuit:
		return "quit"
	default:
		return fmt.Sprintf("pickerState(%d)", int(s))
	}
}

type tickMsg time.Time

type picker struct {
	title    string
	groups   []Group
	names    []string
	selected int
	state    pickerState
	keys     keyMap
	width    int
	height   int
}

func newPicker(cfg Config) (picker, error) {
	if len(cfg.Groups) == 0 {
		return picker{}, errNoGroups
	}
	return picker{
		title:  cfg.Title,
		groups: cfg.Groups,
		names:  groupNames(cfg.Groups),
		keys:   defaultKeyMap(),
	}, nil
}

func (m picker) Init() tea.Cmd {
	return tick()
}

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateRunning {
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		if m.state != stateRunning {
			return m, nil
		}
		return m.apply(m.keys.action(msg))
	}
	return m, nil
}

func (m picker) apply(a action) (picker, tea.Cmd) {
	switch a {
	case actionDown:
		m.moveDown()
	case actionUp:
		m.moveUp()
	case actionConfirm:
		m.state = stateConfirmed
		return m, tea.Quit
	case actionQuit:
		m.state = stateQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m *picker) moveDown() {
	m.selected = (m.selected + 1) % len(m.groups)
}

func (m *picker) moveUp() {
	if m.selected == 0 {
		m.selected = len(m.groups) - 1
		return
	}
	m.selected--
}

func (m picker) View() string {
	if m.state != stateRunning {
		return ""
	}
	return renderFrame(m.frame(), m.width, m.height)
}

func (m picker) frame() frame {
	return frame{
		Title:      m.title,
		GroupNames: m.names,
		Selected:   m.selected,
		Footer:     m.keys.legend(),
	}
}

func (m picker) selectedGroup() Group {
	return m.groups[m.selected]
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// groupLauncher is the part of Launcher the picker needs.
type groupLauncher interface {
	LaunchGroup(group Group) []*LaunchError
}

// Outcome describes how a picker run ended.
type Outcome struct {
	State  pickerState
	Group  Group
	Errors []*LaunchError
}

func (o Outcome) Confirmed() bool {
	return o.State == stateConfirmed
}

// runPicker shows the menu until the user confirms or quits. On confirm every
// app of the chosen group is launched after the terminal has been restored.
func runPicker(ctx context.Context, cfg Config, launcher groupLauncher, opts ...tea.ProgramOption) (Outcome, error) {
	m, err := newPicker(cfg)
	if err != nil {
		return Outcome{}, err
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("run error: %w", err)
	}

	done, ok := final.(picker)
	if !ok {
		return Outcome{}, fmt.Errorf("unexpected model %T", final)
	}

	out := Outcome{State: done.state}
	if done.state != stateConfirmed {
		return out, nil
	}
	out.Group = done.selectedGroup()
	out.Errors = launcher.LaunchGroup(out.Group)
	return out, nil
}
