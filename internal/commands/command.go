package commands

import (
	"context"
	"fmt"

	"github.com/petuhovskiy/notepick/internal/app"
)

var (
	ErrUnknownCommand = fmt.Errorf("unknown command")
	ErrBadArgs        = fmt.Errorf("bad command arguments")
	ErrNoteNotFound   = fmt.Errorf("note not found")
)

const (
	IDPickRandomNote = "pick-random-note"
	IDSetPriority    = "set-priority"
	IDGetPriority    = "get-priority"
	IDDueFlashcards  = "due-flashcards"
	IDOpenNote       = "open-note"
	IDCloseNote      = "close-note"
)

// One of the command implementations.
type Command interface {
	Execute(ctx context.Context) error
}

// Load creates the command registered under id.
func Load(base *app.App, notifier Notifier, id string, args []string) (Command, error) {
	switch id {
	case IDPickRandomNote:
		return NewPickRandomNote(base, notifier), nil
	case IDSetPriority:
		return NewSetPriority(base, notifier, args)
	case IDGetPriority:
		return NewGetPriority(base, notifier, args)
	case IDDueFlashcards:
		return NewDueFlashcards(base, notifier), nil
	case IDOpenNote:
		return NewOpenNote(base, notifier, args)
	case IDCloseNote:
		return NewCloseNote(base, notifier, args)
	default:
		return nil, fmt.Errorf("command %q: %w", id, ErrUnknownCommand)
	}
}
