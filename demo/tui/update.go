package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case HealthMsg:
		return m.handleHealth(msg)
	case PackageMsg:
		return m.handlePackage(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.State == StateEditing {
		return m.handleEditingKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r", "R":
		if m.State == StateReady || m.State == StateError {
			return m.startGeneration(m.Category)
		}
	case "e", "/":
		if m.State != StateLoading {
			m.State = StateEditing
			m.Input = m.Category
			m.Err = nil
		}
	}
	return m, nil
}

// handleEditingKey edits the category line
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.Package != nil {
			m.State = StateReady
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyEnter:
		return m.startGeneration(strings.TrimSpace(m.Input))
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.Input = ""
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(msg.Runes)
	}
	return m, nil
}

func (m Model) startGeneration(category string) (tea.Model, tea.Cmd) {
	m.Category = category
	m.State = StateLoading
	m.Err = nil
	return m, generatePackage(m.Client, category)
}

// handleHealth records whether the API is reachable
func (m Model) handleHealth(msg HealthMsg) (tea.Model, tea.Cmd) {
	m.Connected = msg.Err == nil
	m.BankVersion = msg.BankVersion
	return m, nil
}

// handlePackage stores a generated package and bumps the iteration counter
func (m Model) handlePackage(msg PackageMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Package = msg.Package
	m.RequestID = msg.RequestID
	m.Iteration++
	m.Connected = true
	m.State = StateReady
	return m, nil
}
