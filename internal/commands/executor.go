package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/app"
	"github.com/petuhovskiy/notepick/internal/log"
)

type Executor struct {
	base     *app.App
	notifier Notifier
}

func NewExecutor(base *app.App, notifier Notifier) *Executor {
	return &Executor{
		base:     base,
		notifier: notifier,
	}
}

// Run loads and executes a single command.
func (e *Executor) Run(ctx context.Context, id string, args []string) error {
	cmd, err := Load(e.base, e.notifier, id, args)
	if err != nil {
		return err
	}
	return Execute(ctx, id, cmd)
}

// Execute runs cmd with a logger named after it and records the time spent.
func Execute(ctx context.Context, id string, cmd Command) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ctx = log.Into(ctx, id)
	started := time.Now()
	err := cmd.Execute(ctx)
	app.CommandTime.WithLabelValues(id).Observe(time.Since(started).Seconds())

	if err != nil {
		log.Error(ctx, "command failed", zap.Error(err))
	}
	return err
}
