package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/app"
	"github.com/petuhovskiy/notepick/internal/log"
)

// serveCmd keeps the app running and executes command ids read from stdin,
// one per line, e.g. "pick-random-note" or "set-priority thesis 3".
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Execute commands read from stdin and expose metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), base, cmd.InOrStdin(), executor.Run)
	},
}

type runFunc func(ctx context.Context, id string, args []string) error

// serve returns once the input is exhausted or ctx is done, after background jobs have stopped.
func serve(ctx context.Context, a *app.App, in io.Reader, run runFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.StartPrometheus(ctx)

	err := serveLines(ctx, in, run)

	// the metrics server only exits on cancellation
	cancel()
	a.Register.WaitAll(ctx)
	return err
}

func serveLines(ctx context.Context, in io.Reader, run runFunc) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}

			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}

			// errors are logged by the executor, keep serving
			err := run(ctx, fields[0], fields[1:])
			if err != nil {
				log.Warn(ctx, "command returned error", zap.String("command", fields[0]), zap.Error(err))
			}
		}
	}
}
