package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stwalsh4118/tagit/internal/config"
	"github.com/stwalsh4118/tagit/internal/debug"
	"github.com/stwalsh4118/tagit/internal/git"
	"github.com/stwalsh4118/tagit/internal/metrics"
	"github.com/stwalsh4118/tagit/internal/tagname"
)

// WarningKind identifies which inline warning the tag dialog shows.
type WarningKind int

// Warning kinds, evaluated in this order
const (
	WarningNone        WarningKind = iota // Nothing to show
	WarningInvalidName                    // Typed text sanitizes to a blank name
	WarningRenamed                        // Tag will be created under the sanitized name
)

// TagDialogOptions is what the host supplies when opening the tag dialog.
type TagDialogOptions struct {
	Repository   git.Repository
	TargetCommit string // full SHA of the commit to tag
	InitialName  string // optional proposed name
	Dispatcher   git.Dispatcher
	Recorder     *metrics.Recorder // nil disables histogram recording
	Labels       config.Labels
}

// tagsLoadedMsg carries the result of the tag-list fetch.
type tagsLoadedMsg struct {
	tags []string
	err  error
}

// tagCreatedMsg is returned after attempting to create the tag.
type tagCreatedMsg struct {
	name    string
	commit  string
	elapsed time.Duration
	err     error
}

// dialogDismissedMsg is emitted when the user cancels the dialog.
type dialogDismissedMsg struct{}

// TagDialog is the state of the "create a tag" dialog.
//
// Validation state (sanitized name and verdict) is only ever written by
// SetName, so it always matches the proposed name and the known tags as they
// were at the last keystroke. The tag-list fetch updates knownTags without
// revalidating.
type TagDialog struct {
	repo       git.Repository
	target     string
	dispatcher git.Dispatcher
	recorder   *metrics.Recorder
	labels     config.Labels

	input   textinput.Model
	spinner spinner.Model

	proposedName  string
	sanitizedName string
	validation    tagname.ValidationError
	knownTags     tagname.Set
	submitting    bool
}

// NewTagDialog builds the dialog and applies the initial name, if any.
func NewTagDialog(opts TagDialogOptions) TagDialog {
	d := TagDialog{
		repo:       opts.Repository,
		target:     opts.TargetCommit,
		dispatcher: opts.Dispatcher,
		recorder:   opts.Recorder,
		labels:     opts.Labels,
		input:      initTagNameInput(opts.Labels.Placeholder),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(highlightStyle)),
		knownTags:  tagname.NewSet(),
	}
	if opts.InitialName != "" {
		d = d.SetName(opts.InitialName)
	}
	return d
}

// initTagNameInput creates the name text input. It has no character limit;
// overlong names are reported by validation instead.
func initTagNameInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Width = inputWidth
	ti.PromptStyle = highlightStyle
	ti.TextStyle = lipgloss.NewStyle()
	ti.Focus()
	return ti
}

// Init starts the one-time fetch of the repository's tags.
func (d TagDialog) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadTagsCmd(d.dispatcher, d.recorder, d.repo))
}

// SetName replaces the proposed name and recomputes the sanitized name and
// the validation verdict together.
func (d TagDialog) SetName(raw string) TagDialog {
	d.proposedName = raw
	d.sanitizedName = tagname.Sanitize(raw)
	d.validation = tagname.Validate(d.sanitizedName, d.knownTags)
	if d.input.Value() != raw {
		d.input.SetValue(raw)
		d.input.CursorEnd()
	}
	return d
}

// WithKnownTags replaces the set of existing tags. The current verdict is
// left alone until the name changes again.
func (d TagDialog) WithKnownTags(tags []string) TagDialog {
	d.knownTags = tagname.NewSet(tags...)
	return d
}

// Update handles messages routed to the dialog by the host.
func (d TagDialog) Update(msg tea.Msg) (TagDialog, tea.Cmd) {
	switch msg := msg.(type) {
	case tagsLoadedMsg:
		// Errors are reported by the host; keep the empty set.
		if msg.err == nil {
			d = d.WithKnownTags(msg.tags)
			debug.Debug("known tags loaded", "count", d.knownTags.Len())
		}
		return d, nil

	case spinner.TickMsg:
		if !d.submitting {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyMsg:
		if d.submitting {
			return d, nil
		}
		switch msg.String() {
		case "esc":
			return d, dismissCmd()
		case "enter":
			return d.Submit()
		}

		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		if v := d.input.Value(); v != d.proposedName {
			d = d.SetName(v)
		}
		return d, cmd
	}

	if d.submitting {
		return d, nil
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// SubmitEnabled reports whether the create button is enabled.
func (d TagDialog) SubmitEnabled() bool {
	return d.proposedName != "" &&
		d.validation == tagname.None &&
		!tagname.IsBlank(d.sanitizedName)
}

// CanSubmit reports whether Submit would start a tag creation.
func (d TagDialog) CanSubmit() bool {
	return !d.submitting && d.SubmitEnabled()
}

// Submit starts creating the tag. It is a no-op unless CanSubmit holds.
// Once started, the dialog stays in the submitting state for good.
func (d TagDialog) Submit() (TagDialog, tea.Cmd) {
	if !d.CanSubmit() {
		return d, nil
	}

	d.submitting = true
	d.input.Blur()

	debug.Info("creating tag", "repo", d.repo.Path, "tag", d.sanitizedName, "commit", git.ShortSHA(d.target))
	sw := d.recorder.Start(metrics.OpCreateTag)
	return d, tea.Batch(d.spinner.Tick, createTagCmd(d.dispatcher, sw, d.repo, d.sanitizedName, d.target))
}

// Warning returns the inline warning to show, if any.
func (d TagDialog) Warning() (WarningKind, string) {
	if d.proposedName != "" && tagname.IsBlank(d.sanitizedName) {
		return WarningInvalidName, fmt.Sprintf("%s is not a valid tag name.", d.proposedName)
	}
	if d.proposedName != d.sanitizedName {
		return WarningRenamed, fmt.Sprintf("Will be created as %s.", d.sanitizedName)
	}
	return WarningNone, ""
}

// ErrorMessage returns the validation message for the current name, or "".
func (d TagDialog) ErrorMessage() string {
	return d.validation.Message(d.sanitizedName)
}

// ProposedName returns the raw text typed by the user.
func (d TagDialog) ProposedName() string { return d.proposedName }

// SanitizedName returns the name the tag will be created under.
func (d TagDialog) SanitizedName() string { return d.sanitizedName }

// ValidationError returns the verdict for the current name.
func (d TagDialog) ValidationError() tagname.ValidationError { return d.validation }

// Submitting reports whether tag creation has started.
func (d TagDialog) Submitting() bool { return d.submitting }

// KnownTags returns the tags fetched from the repository.
func (d TagDialog) KnownTags() tagname.Set { return d.knownTags }

// TargetCommit returns the SHA being tagged.
func (d TagDialog) TargetCommit() string { return d.target }

// loadTagsCmd fetches every tag name from the repository.
func loadTagsCmd(dispatcher git.Dispatcher, recorder *metrics.Recorder, repo git.Repository) tea.Cmd {
	return func() tea.Msg {
		sw := recorder.Start(metrics.OpGetAllTags)
		tags, err := dispatcher.GetAllTags(context.Background(), repo)
		sw.Stop(err)
		return tagsLoadedMsg{tags: tags, err: err}
	}
}

// createTagCmd asks the dispatcher to create the tag and stops sw when it
// completes, whatever the outcome.
func createTagCmd(dispatcher git.Dispatcher, sw *metrics.Stopwatch, repo git.Repository, name, commit string) tea.Cmd {
	return func() tea.Msg {
		err := dispatcher.CreateTag(context.Background(), repo, name, commit)
		elapsed := sw.Stop(err)
		return tagCreatedMsg{name: name, commit: commit, elapsed: elapsed, err: err}
	}
}

func dismissCmd() tea.Cmd {
	return func() tea.Msg {
		return dialogDismissedMsg{}
	}
}
