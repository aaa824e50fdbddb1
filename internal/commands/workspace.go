package commands

import (
	"context"
	"fmt"

	"github.com/petuhovskiy/notepick/internal/app"
	"github.com/petuhovskiy/notepick/internal/models"
)

type PaneKeeper interface {
	Pin(noteID uint) error
	ClosePane(noteID uint) (int64, error)
}

type NoteFinder interface {
	FindByTitle(title string) (*models.Note, error)
}

// OpenNote pins a note open. Pinned notes are not offered by pick-random-note.
type OpenNote struct {
	title    string
	notes    NoteFinder
	panes    PaneKeeper
	notifier Notifier
}

func NewOpenNote(a *app.App, notifier Notifier, args []string) (*OpenNote, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected <title>, got %d args: %w", len(args), ErrBadArgs)
	}

	return &OpenNote{
		title:    args[0],
		notes:    a.Repo.Note,
		panes:    a.Repo.Workspace,
		notifier: notifier,
	}, nil
}

func (c *OpenNote) Execute(ctx context.Context) error {
	note, err := findNote(c.notes, c.title)
	if err != nil {
		return err
	}

	err = c.panes.Pin(note.ID)
	if err != nil {
		return fmt.Errorf("pin note %d: %w", note.ID, err)
	}

	c.notifier.Notify(ctx, fmt.Sprintf("%s: opened", note.Title))
	return nil
}

// CloseNote closes every pane showing the note, pinned or not.
type CloseNote struct {
	title    string
	notes    NoteFinder
	panes    PaneKeeper
	notifier Notifier
}

func NewCloseNote(a *app.App, notifier Notifier, args []string) (*CloseNote, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected <title>, got %d args: %w", len(args), ErrBadArgs)
	}

	return &CloseNote{
		title:    args[0],
		notes:    a.Repo.Note,
		panes:    a.Repo.Workspace,
		notifier: notifier,
	}, nil
}

func (c *CloseNote) Execute(ctx context.Context) error {
	note, err := findNote(c.notes, c.title)
	if err != nil {
		return err
	}

	closed, err := c.panes.ClosePane(note.ID)
	if err != nil {
		return fmt.Errorf("close note %d: %w", note.ID, err)
	}

	if closed == 0 {
		c.notifier.Notify(ctx, fmt.Sprintf("%s: not open", note.Title))
		return nil
	}
	c.notifier.Notify(ctx, fmt.Sprintf("%s: closed", note.Title))
	return nil
}
