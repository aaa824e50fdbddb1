package flashcards

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/log"
)

type DueCounter interface {
	CountDue(now time.Time) (int64, error)
}

type Counter struct {
	repo DueCounter
}

func NewCounter(repo DueCounter) *Counter {
	return &Counter{repo: repo}
}

// DueCount returns the number of cards due at now.
// A failing card store counts as nothing due, so it never blocks picking projects.
func (c *Counter) DueCount(ctx context.Context, now time.Time) int {
	n, err := c.repo.CountDue(now)
	if err != nil {
		log.Error(ctx, "error fetching due flashcards", zap.Error(err))
		return 0
	}
	return int(n)
}
