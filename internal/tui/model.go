package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stwalsh4118/tagit/internal/config"
	"github.com/stwalsh4118/tagit/internal/debug"
)

// Outcome is how a tagit session ended.
type Outcome int

// Outcome constants
const (
	OutcomePending     Outcome = iota // Still running
	OutcomeCreated                    // Tag created
	OutcomeCancelled                  // Dialog dismissed before submitting
	OutcomeFailed                     // Dispatcher reported an error
	OutcomeInterrupted                // Quit while the create request was in flight
)

// String returns a short identifier for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "pending"
	}
}

// Result describes what happened once the program exits.
type Result struct {
	Outcome Outcome
	TagName string
	Commit  string
	Elapsed time.Duration
	Err     error
}

// Model is the Bubble Tea application state for tagit. It hosts the tag
// dialog and the error dialog shown when tag creation fails.
type Model struct {
	width  int
	height int
	err    error // Tag fetch failure, shown in the footer

	// Dialog state
	dialogMode  DialogMode // Which dialog is currently open (DialogNone if none)
	dialogError string     // Error message for DialogError

	tagDialog TagDialog
	labels    config.Labels
	result    Result
}

// NewModel returns a Model with the tag dialog open.
func NewModel(opts TagDialogOptions) Model {
	return Model{
		width:      80,
		height:     24,
		dialogMode: DialogCreateTag,
		tagDialog:  NewTagDialog(opts),
		labels:     opts.Labels,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tagDialog.Init()
}

// Result returns the session outcome.
func (m Model) Result() Result {
	return m.result
}

// TagDialog returns the hosted dialog.
func (m Model) TagDialog() TagDialog {
	return m.tagDialog
}

// DialogMode returns the open dialog.
func (m Model) DialogMode() DialogMode {
	return m.dialogMode
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quitInterrupted()
		}
		if m.dialogMode == DialogError {
			return m.updateErrorDialog(msg)
		}

	case tagsLoadedMsg:
		if msg.err != nil {
			debug.Warn("failed to load tags", "repo", m.tagDialog.repo.Path, "err", msg.err)
			m.err = msg.err
		}

	case dialogDismissedMsg:
		debug.Info("tag dialog dismissed")
		m.dialogMode = DialogNone
		m.result = Result{Outcome: OutcomeCancelled}
		return m, tea.Quit

	case tagCreatedMsg:
		return m.handleTagCreated(msg)
	}

	if m.dialogMode != DialogCreateTag {
		return m, nil
	}

	var cmd tea.Cmd
	m.tagDialog, cmd = m.tagDialog.Update(msg)
	return m, cmd
}

// handleTagCreated closes the tag dialog. Success ends the program; failure
// opens the error dialog.
func (m Model) handleTagCreated(msg tagCreatedMsg) (tea.Model, tea.Cmd) {
	m.result = Result{
		TagName: msg.name,
		Commit:  msg.commit,
		Elapsed: msg.elapsed,
		Err:     msg.err,
	}

	if msg.err != nil {
		debug.Error("tag creation failed", "tag", msg.name, "err", msg.err)
		m.result.Outcome = OutcomeFailed
		m.dialogMode = DialogError
		m.dialogError = msg.err.Error()
		return m, nil
	}

	debug.Info("tag created", "tag", msg.name, "commit", msg.commit)
	m.result.Outcome = OutcomeCreated
	m.dialogMode = DialogNone
	return m, tea.Quit
}

// updateErrorDialog handles keys while the failure dialog is open.
func (m Model) updateErrorDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q":
		m.dialogMode = DialogNone
		m.dialogError = ""
		return m, tea.Quit
	}
	return m, nil
}

// quitInterrupted handles ctrl+c. A create request already sent cannot be
// cancelled, so the outcome records that it may or may not have completed.
func (m Model) quitInterrupted() (tea.Model, tea.Cmd) {
	if m.result.Outcome == OutcomePending {
		if m.tagDialog.Submitting() {
			m.result = Result{Outcome: OutcomeInterrupted, TagName: m.tagDialog.SanitizedName(), Commit: m.tagDialog.TargetCommit()}
		} else {
			m.result = Result{Outcome: OutcomeCancelled}
		}
	}
	m.dialogMode = DialogNone
	return m, tea.Quit
}
