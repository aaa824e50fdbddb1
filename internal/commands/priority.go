package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/petuhovskiy/notepick/internal/app"
	"github.com/petuhovskiy/notepick/internal/models"
	"github.com/petuhovskiy/notepick/internal/priority"
)

type TitleFinder interface {
	priority.PropertyStore
	NoteFinder
}

// SetPriority assigns a priority to the note with the given title.
type SetPriority struct {
	title    string
	value    int
	notes    TitleFinder
	notifier Notifier
}

func NewSetPriority(a *app.App, notifier Notifier, args []string) (*SetPriority, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected <title> <priority>, got %d args: %w", len(args), ErrBadArgs)
	}

	value, err := strconv.Atoi(args[1])
	if err != nil || value < 1 || value > priority.MaxPriority {
		return nil, fmt.Errorf("priority must be an integer in [1, %d], got %q: %w", priority.MaxPriority, args[1], ErrBadArgs)
	}

	return &SetPriority{
		title:    args[0],
		value:    value,
		notes:    a.Repo.Note,
		notifier: notifier,
	}, nil
}

func (c *SetPriority) Execute(ctx context.Context) error {
	note, err := findNote(c.notes, c.title)
	if err != nil {
		return err
	}

	err = priority.Assign(c.notes, note, c.value)
	if err != nil {
		return err
	}

	c.notifier.Notify(ctx, fmt.Sprintf("%s: priority %d", note.Title, c.value))
	return nil
}

// GetPriority reports the priority of the note with the given title.
type GetPriority struct {
	title           string
	defaultPriority int
	notes           TitleFinder
	notifier        Notifier
}

func NewGetPriority(a *app.App, notifier Notifier, args []string) (*GetPriority, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected <title>, got %d args: %w", len(args), ErrBadArgs)
	}

	return &GetPriority{
		title:           args[0],
		defaultPriority: a.Config.DefaultPriority,
		notes:           a.Repo.Note,
		notifier:        notifier,
	}, nil
}

func (c *GetPriority) Execute(ctx context.Context) error {
	note, err := findNote(c.notes, c.title)
	if err != nil {
		return err
	}

	val, ok := priority.Get(note)
	if !ok {
		c.notifier.Notify(ctx, fmt.Sprintf("%s: no priority (weight %d)", note.Title, c.defaultPriority))
		return nil
	}
	c.notifier.Notify(ctx, fmt.Sprintf("%s: priority %d", note.Title, val))
	return nil
}

func findNote(notes NoteFinder, title string) (*models.Note, error) {
	note, err := notes.FindByTitle(title)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%q: %w", title, ErrNoteNotFound)
	}
	return note, nil
}
