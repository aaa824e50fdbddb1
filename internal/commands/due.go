package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/petuhovskiy/notepick/internal/app"
)

// DueFlashcards reports how many flashcards are due.
type DueFlashcards struct {
	due      DueCounter
	notifier Notifier
	now      func() time.Time
}

func NewDueFlashcards(a *app.App, notifier Notifier) *DueFlashcards {
	return &DueFlashcards{
		due:      a.Flashcards,
		notifier: notifier,
		now:      time.Now,
	}
}

func (c *DueFlashcards) Execute(ctx context.Context) error {
	n := c.due.DueCount(ctx, c.now())
	c.notifier.Notify(ctx, fmt.Sprintf("dueFlashcards: %d", n))
	return nil
}
