package tui

// UI Text Constants
const (
	TextFooterEditing = "Type a category and press Enter | Ctrl+U to clear | Esc to go back | Ctrl+C to quit"
	TextFooterLoading = "Ctrl+C to quit"
	TextFooterReady   = "Press 'r' to regenerate | 'e' to edit the category | 'q' to quit"
)
