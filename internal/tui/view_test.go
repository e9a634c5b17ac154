package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stwalsh4118/tagit/internal/config"
)

func TestTagDialogViewShowsTitleAndTarget(t *testing.T) {
	d := newTestDialog(t, &fakeDispatcher{}, "")
	out := d.View(dialogWidth)

	assert.Contains(t, out, "Create a tag")
	assert.Contains(t, out, "0123456")
	assert.Contains(t, out, "Create tag")
	assert.Contains(t, out, "Cancel")
	assert.Contains(t, out, "Enter: create")
}

func TestTagDialogViewWarnings(t *testing.T) {
	t.Run("renamed notice", func(t *testing.T) {
		d := newTestDialog(t, &fakeDispatcher{}, "release v1.0")
		assert.Contains(t, d.View(dialogWidth), "Will be created as release-v1.0.")
	})

	t.Run("invalid name warning", func(t *testing.T) {
		d := newTestDialog(t, &fakeDispatcher{}, "???")
		assert.Contains(t, d.View(dialogWidth), "??? is not a valid tag name.")
	})

	t.Run("no warning for clean name", func(t *testing.T) {
		d := newTestDialog(t, &fakeDispatcher{}, "v1.0")
		out := d.View(dialogWidth)
		assert.NotContains(t, out, iconWarning)
	})
}

func TestTagDialogViewSubmitting(t *testing.T) {
	d := newTestDialog(t, &fakeDispatcher{}, "v1.0")
	d, _ = d.Submit()

	out := d.View(dialogWidth)
	assert.Contains(t, out, "Creating tag…")
	assert.NotContains(t, out, "Enter: create")
}

func TestTagDialogViewUsesLabels(t *testing.T) {
	d := NewTagDialog(TagDialogOptions{
		TargetCommit: testCommit,
		Dispatcher:   &fakeDispatcher{},
		Labels:       config.DefaultLabels("darwin"),
	})

	out := d.View(dialogWidth)
	assert.Contains(t, out, "Create a Tag")
	assert.Contains(t, out, "Create Tag")
}

func TestModelViewNoDialog(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, "")
	m.dialogMode = DialogNone

	assert.Equal(t, "", m.renderDialog())
	assert.Equal(t, "", strings.TrimSpace(m.View()))
}

func TestModelViewCreated(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, "")
	m.dialogMode = DialogNone
	m.result = Result{Outcome: OutcomeCreated, TagName: "v3.0", Commit: testCommit}

	assert.Contains(t, m.View(), "Created tag v3.0 at 0123456")
}

func TestContentWidth(t *testing.T) {
	m := Model{width: 200}
	assert.Equal(t, dialogWidth, m.contentWidth())

	m.width = 50
	assert.Equal(t, 50-dialogHorizontalFrame, m.contentWidth())

	m.width = 10
	assert.Equal(t, dialogMinWidth, m.contentWidth())
}
