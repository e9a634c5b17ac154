package tui

import "github.com/stwalsh4118/tagit/internal/config"

// DialogMode represents the type of dialog currently open.
type DialogMode int

// Dialog mode constants
const (
	DialogNone      DialogMode = iota // No dialog open
	DialogCreateTag                   // Tag creation dialog
	DialogError                       // Error shown after a failed tag creation
)

// DialogTitle returns the title for a given dialog mode.
func DialogTitle(mode DialogMode, labels config.Labels) string {
	switch mode {
	case DialogCreateTag:
		return labels.Title
	case DialogError:
		return labels.ErrorTitle
	default:
		return ""
	}
}
