package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/stwalsh4118/tagit/internal/git"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if m.dialogMode != DialogNone {
		b.WriteString(m.renderDialog())
		b.WriteString("\n")
	}

	if m.result.Outcome == OutcomeCreated {
		b.WriteString(successStyle.Render(fmt.Sprintf("✓ Created tag %s at %s", m.result.TagName, git.ShortSHA(m.result.Commit))))
		b.WriteString("\n")
	}

	if footer := m.renderFooter(); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}

	return b.String()
}

// renderDialog renders the dialog overlay when dialogMode is set.
// Returns empty string if no dialog is open.
func (m Model) renderDialog() string {
	switch m.dialogMode {
	case DialogCreateTag:
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.tagDialog.View(m.contentWidth()))
	case DialogError:
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderErrorDialog())
	default:
		return ""
	}
}

// renderErrorDialog shows why tag creation failed.
func (m Model) renderErrorDialog() string {
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render(DialogTitle(DialogError, m.labels)))
	b.WriteString("\n\n")
	b.WriteString(dialogErrorStyle.Render(wordwrap.String(m.dialogError, width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Enter/Esc: close"))

	return errorBoxStyle.Width(width + dialogHorizontalFrame).Render(b.String())
}

// renderFooter shows host-level errors such as a failed tag fetch.
func (m Model) renderFooter() string {
	if m.err == nil {
		return ""
	}
	msg := fmt.Sprintf("Could not load existing tags: %v", m.err)
	return dimStyle.Render(wordwrap.String(msg, m.width))
}

// dialogHorizontalFrame is the border plus padding width of dialogBoxStyle.
const dialogHorizontalFrame = 6

// contentWidth returns the text width available inside a dialog box.
func (m Model) contentWidth() int {
	w := dialogWidth
	if m.width > 0 && m.width-dialogHorizontalFrame < w {
		w = m.width - dialogHorizontalFrame
	}
	if w < dialogMinWidth {
		w = dialogMinWidth
	}
	return w
}

// View renders the tag dialog box with the given inner width.
func (d TagDialog) View(width int) string {
	var b strings.Builder

	b.WriteString(dialogTitleStyle.Render(d.labels.Title))
	b.WriteString("\n\n")

	target := git.ShortSHA(d.target)
	if target == "" {
		target = "HEAD"
	}
	b.WriteString(dimStyle.Render(wordwrap.String(fmt.Sprintf("Tag commit %s in %s", target, d.repo), width)))
	b.WriteString("\n\n")

	b.WriteString(d.labels.NameLabel + ": ")
	b.WriteString(d.input.View())
	b.WriteString("\n")

	if msg := d.ErrorMessage(); msg != "" {
		b.WriteString("\n")
		b.WriteString(dialogErrorStyle.Render(wordwrap.String(msg, width)))
		b.WriteString("\n")
	}

	if kind, text := d.Warning(); kind != WarningNone {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(wordwrap.String(iconWarning+" "+text, width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.renderButtons())

	if !d.submitting {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Enter: create  Esc: cancel"))
	}

	return dialogBoxStyle.Width(width + dialogHorizontalFrame).Render(b.String())
}

// renderButtons renders the action row; the create button reflects
// SubmitEnabled and turns into a spinner while submitting.
func (d TagDialog) renderButtons() string {
	if d.submitting {
		return d.spinner.View() + " " + boldStyle.Render(d.labels.Creating)
	}

	create := buttonStyle.Render(d.labels.CreateButton)
	if !d.SubmitEnabled() {
		create = disabledButtonStyle.Render(d.labels.CreateButton)
	}
	cancel := secondaryButtonStyle.Render(d.labels.CancelButton)

	return lipgloss.JoinHorizontal(lipgloss.Top, create, " ", cancel)
}
