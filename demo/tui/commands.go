package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// checkHealth creates a command to probe the API
func checkHealth(client *APIClient) tea.Cmd {
	return func() tea.Msg {
		version, err := client.Health()
		return HealthMsg{BankVersion: version, Err: err}
	}
}

// generatePackage creates a command to request a package
func generatePackage(client *APIClient, category string) tea.Cmd {
	return func() tea.Msg {
		pkg, requestID, err := client.Generate(category)
		return PackageMsg{Package: pkg, RequestID: requestID, Err: err}
	}
}
