package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"viralreel/config"
	"viralreel/render"
	"viralreel/types"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the application state machine
type State string

const (
	StateEditing State = "editing"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Model represents the TUI client state (thin client)
type Model struct {
	Client *APIClient

	State     State
	Input     string
	Category  string // category of the last request
	Package   *types.Package
	RequestID string
	Iteration int
	Err       error

	// Connection status
	Connected   bool
	BankVersion string
}

// NewModel creates a new TUI model. The first package, for the default
// category, is requested as soon as the program starts.
func NewModel(apiURL string) Model {
	return Model{
		Client:   NewAPIClient(apiURL),
		State:    StateLoading,
		Input:    config.DefaultCategory,
		Category: config.DefaultCategory,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(checkHealth(m.Client), generatePackage(m.Client, m.Category))
}

// CharCount is the trimmed length of the category: the line being typed
// while editing, otherwise the category of the last request
func (m Model) CharCount() int {
	text := m.Category
	if m.State == StateEditing {
		text = m.Input
	}
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateEditing:
		return HighlightStyle.Render("✏️  Enter a content category") + "\n\n" +
			InputStyle.Render(m.Input+"█") + "\n" +
			InfoStyle.Render(fmt.Sprintf("%d characters", m.CharCount()))
	case StateLoading:
		return StatusStyle.Render(fmt.Sprintf("⏳ Generating package for %q...", m.Category))
	case StateReady:
		return HighlightStyle.Render("✅ " + render.Headline(*m.Package))
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", errMsg))
	default:
		return ""
	}
}

// formatPackage formats the package summary for display
func (m Model) formatPackage() string {
	p := m.Package
	var b strings.Builder

	b.WriteString(LabelStyle.Render("Hook"))
	b.WriteString("\n")
	b.WriteString(p.HookFormula)
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render(fmt.Sprintf("Script (%.1fs)", p.TotalDuration())))
	b.WriteString("\n")
	for _, seg := range p.Script {
		b.WriteString(fmt.Sprintf("%d. [%s • %.1fs] %s\n", seg.Order+1, seg.Label, seg.DurationSeconds, seg.Text))
	}
	b.WriteString("\n")

	if len(p.ViralTitles) > 0 {
		b.WriteString(LabelStyle.Render("Title"))
		b.WriteString("\n")
		b.WriteString(p.ViralTitles[0])
		b.WriteString("\n\n")
	}

	b.WriteString(LabelStyle.Render("Hashtags"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(strings.Join(p.Hashtags, " ")))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Subtitle words: %d | Editing beats: %d | Post at: %s",
		len(p.Subtitles), len(p.EditingPlan), p.BestPostTime))

	return b.String()
}
