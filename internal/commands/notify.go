package commands

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/log"
)

// Notifier shows short messages to the user.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(ctx context.Context, msg string) {
	log.Debug(ctx, "notify", zap.String("msg", msg))
	_, _ = fmt.Fprintln(n.w, msg)
}
