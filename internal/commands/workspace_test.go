package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/notepick/internal/actions"
	"github.com/petuhovskiy/notepick/internal/models"
)

func Test_OpenAndCloseNoteArgs(t *testing.T) {
	for _, args := range [][]string{nil, {"a", "b"}} {
		_, err := NewOpenNote(testApp(), &recordingNotifier{}, args)
		assert.ErrorIs(t, err, ErrBadArgs, "args %v", args)

		_, err = NewCloseNote(testApp(), &recordingNotifier{}, args)
		assert.ErrorIs(t, err, ErrBadArgs, "args %v", args)
	}
}

func Test_OpenNoteHidesFromPick(t *testing.T) {
	tp := newTestPick(0)
	tp.notes.add(tagID, "Project", 0, nil)
	tp.notes.add(1, "write thesis", tagID, nil)
	ctx := context.Background()

	open := &OpenNote{title: "write thesis", notes: tp.notes, panes: tp.workspace, notifier: tp.notifier}
	require.NoError(t, open.Execute(ctx))
	assert.Equal(t, []models.Pane{{NoteID: 1, Pinned: true}}, tp.workspace.panes)

	require.NoError(t, tp.cmd.Execute(ctx))
	assert.Empty(t, tp.dispatcher.got)
	assert.Equal(t, []string{"write thesis: opened", msgNoActions}, tp.notifier.msgs)

	closeNote := &CloseNote{title: "write thesis", notes: tp.notes, panes: tp.workspace, notifier: tp.notifier}
	require.NoError(t, closeNote.Execute(ctx))
	assert.Empty(t, tp.workspace.panes)

	require.NoError(t, tp.cmd.Execute(ctx))
	require.Len(t, tp.dispatcher.got, 1)
	assert.Equal(t, actions.CategoryProject, tp.dispatcher.got[0].Category())
}

func Test_CloseNoteNotOpen(t *testing.T) {
	notes := newFakeNotes()
	notes.add(1, "thesis", 0, nil)
	n := &recordingNotifier{}
	ctx := context.Background()

	closeNote := &CloseNote{title: "thesis", notes: notes, panes: newFakeWorkspace(), notifier: n}
	require.NoError(t, closeNote.Execute(ctx))
	assert.Equal(t, []string{"thesis: not open"}, n.msgs)

	missing := &CloseNote{title: "nope", notes: notes, panes: newFakeWorkspace(), notifier: n}
	assert.ErrorIs(t, missing.Execute(ctx), ErrNoteNotFound)
}
