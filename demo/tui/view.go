package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🎬 viralreel Demo"))
	b.WriteString("\n\n")

	// Connection
	if m.Connected {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("🌐 Connected (templates %s)", m.BankVersion)))
	} else {
		b.WriteString(ErrorStyle.Render("❌ Not connected to API"))
	}
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Results
	if m.Package != nil && m.State != StateEditing {
		stats := fmt.Sprintf("📊 Iteration #%d | %d characters | request %s", m.Iteration, m.CharCount(), m.RequestID)
		b.WriteString(InfoStyle.Render(stats))
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render(m.formatPackage()))
		b.WriteString("\n\n")
	}

	// Help text
	switch m.State {
	case StateEditing:
		b.WriteString(InfoStyle.Render(TextFooterEditing))
	case StateLoading:
		b.WriteString(InfoStyle.Render(TextFooterLoading))
	default:
		b.WriteString(InfoStyle.Render(TextFooterReady))
	}

	return b.String()
}
