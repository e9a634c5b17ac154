package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stwalsh4118/tagit/internal/config"
	"github.com/stwalsh4118/tagit/internal/git"
	"github.com/stwalsh4118/tagit/internal/metrics"
)

const testCommit = "0123456789abcdef0123456789abcdef01234567"

type createCall struct {
	repo   git.Repository
	name   string
	commit string
}

// fakeDispatcher records calls and returns canned results.
type fakeDispatcher struct {
	mu        sync.Mutex
	tags      []string
	tagsErr   error
	createErr error
	creates   []createCall
}

func (f *fakeDispatcher) GetAllTags(_ context.Context, _ git.Repository) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tagsErr != nil {
		return nil, f.tagsErr
	}
	return append([]string(nil), f.tags...), nil
}

func (f *fakeDispatcher) CreateTag(_ context.Context, repo git.Repository, name, commit string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, createCall{repo: repo, name: name, commit: commit})
	return f.createErr
}

func (f *fakeDispatcher) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.creates)
}

func testLabels() config.Labels {
	return config.DefaultLabels("linux")
}

func newTestDialog(t *testing.T, f *fakeDispatcher, initial string) TagDialog {
	t.Helper()
	return NewTagDialog(TagDialogOptions{
		Repository:   git.Repository{Path: "/tmp/repo"},
		TargetCommit: testCommit,
		InitialName:  initial,
		Dispatcher:   f,
		Recorder:     metrics.NewRecorder(),
		Labels:       testLabels(),
	})
}

func newTestModel(t *testing.T, f *fakeDispatcher, initial string) Model {
	t.Helper()
	return NewModel(TagDialogOptions{
		Repository:   git.Repository{Path: "/tmp/repo"},
		TargetCommit: testCommit,
		InitialName:  initial,
		Dispatcher:   f,
		Labels:       testLabels(),
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends s to the dialog one rune at a time.
func typeText(d TagDialog, s string) TagDialog {
	for _, r := range s {
		d, _ = d.Update(keyRunes(string(r)))
	}
	return d
}

// collectMsgs runs cmd and any batched commands, returning the messages they
// produce. Blink and spinner ticks are included as-is.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T produced by cmd.
func findMsg[T tea.Msg](cmd tea.Cmd) (T, bool) {
	for _, msg := range collectMsgs(cmd) {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func isQuit(cmd tea.Cmd) bool {
	_, ok := findMsg[tea.QuitMsg](cmd)
	return ok
}
