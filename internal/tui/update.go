package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.moveFocus(1)
		return m, m.refreshFocus()

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, m.refreshFocus()

	case "left":
		if isSelector(m.focus) {
			m.cycle(-1)
			return m, nil
		}

	case "right":
		if isSelector(m.focus) {
			m.cycle(1)
			return m, nil
		}

	case "enter":
		input, err := m.buildInput()
		if err != nil {
			m.err = err
			m.result = nil
			return m, nil
		}
		result, err := m.engine.Project(input)
		if err != nil {
			m.err = err
			m.result = nil
			return m, nil
		}
		m.err = nil
		m.result = result
		return m, nil
	}

	return m.updateFocused(msg)
}

// moveFocus advances focus, skipping fields inactive under the current
// mode/tier selections.
func (m *Model) moveFocus(delta int) {
	for {
		m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
		if m.isActive(m.focus) {
			return
		}
	}
}

// cycle rotates the focused selector field.
func (m *Model) cycle(delta int) {
	switch m.focus {
	case fieldLocation:
		if n := len(m.locations); n > 0 {
			m.locIndex = (m.locIndex + delta + n) % n
		}
	case fieldMode:
		m.byAge = !m.byAge
	case fieldCreditTier:
		n := len(creditTiers)
		m.tierIndex = (m.tierIndex + delta + n) % n
	}
}

// refreshFocus moves textinput focus to the currently selected field.
func (m *Model) refreshFocus() tea.Cmd {
	var cmd tea.Cmd
	for f, ti := range m.inputs {
		if f == m.focus {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[f] = ti
	}
	return cmd
}

// updateFocused forwards a message to the focused text input, if any.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	ti, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	ti, cmd = ti.Update(msg)
	m.inputs[m.focus] = ti
	return m, cmd
}
