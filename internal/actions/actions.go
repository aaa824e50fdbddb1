package actions

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/log"
	"github.com/petuhovskiy/notepick/internal/models"
)

const (
	CategoryProject    = "PROJECT"
	CategoryFlashcards = "OPEN_FLASHCARD_HOMEPAGE"

	// QueueURL is the location of the flashcard review queue.
	QueueURL = "/queue"
)

var ErrUnknownAction = fmt.Errorf("unknown action")

// Action is something the user can be sent to do.
type Action interface {
	Category() string
}

// OpenProject opens the project note.
type OpenProject struct {
	Note models.Note
}

func (OpenProject) Category() string { return CategoryProject }

// OpenFlashcardQueue opens the review queue.
type OpenFlashcardQueue struct {
	Due int
}

func (OpenFlashcardQueue) Category() string { return CategoryFlashcards }

// Workspace navigation replaces the unpinned panes, like following a link in the app.
type Workspace interface {
	Navigate(panes []models.Pane) error
	SetURL(url string) error
}

type SourceFinder interface {
	Sources(noteID uint) ([]models.Note, error)
}

// Dispatcher performs the effect of a selected action on the workspace.
type Dispatcher struct {
	workspace Workspace
	notes     SourceFinder
}

func NewDispatcher(workspace Workspace, notes SourceFinder) *Dispatcher {
	return &Dispatcher{
		workspace: workspace,
		notes:     notes,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, action Action) error {
	switch a := action.(type) {
	case OpenProject:
		log.Info(ctx, "open project", zap.Uint("noteID", a.Note.ID), zap.String("title", a.Note.Title))
		return d.openWithContext(ctx, a.Note)
	case OpenFlashcardQueue:
		log.Info(ctx, "open flashcard home", zap.Int("due", a.Due))
		err := d.workspace.Navigate(nil)
		if err != nil {
			return fmt.Errorf("leave current page: %w", err)
		}
		return d.workspace.SetURL(QueueURL)
	default:
		return fmt.Errorf("action %T: %w", action, ErrUnknownAction)
	}
}

// openWithContext opens the note as a page, then its first source in context if it has one.
func (d *Dispatcher) openWithContext(ctx context.Context, note models.Note) error {
	sources, err := d.notes.Sources(note.ID)
	if err != nil {
		return err
	}

	panes := []models.Pane{{NoteID: note.ID}}
	if len(sources) > 0 {
		log.Debug(ctx, "open source in context", zap.Uint("sourceID", sources[0].ID))
		panes = append(panes, models.Pane{NoteID: sources[0].ID, InContext: true})
	}

	err = d.workspace.Navigate(panes)
	if err != nil {
		return fmt.Errorf("open note %d: %w", note.ID, err)
	}
	return nil
}
