package tui

import "viralreel/types"

// HealthMsg is sent once the API health probe returns
type HealthMsg struct {
	BankVersion string
	Err         error
}

// PackageMsg is sent when a generate request completes
type PackageMsg struct {
	Package   *types.Package
	RequestID string
	Err       error
}
